// Command worker runs the embedding pipeline: it consumes embedding tasks
// from RabbitMQ, loads the referenced documents from Postgres, embeds their
// chunks, and keeps the Qdrant collection in sync.
package main

import (
	"go.uber.org/fx"

	"github.com/hearthware/wellness-core/embedding"
	"github.com/hearthware/wellness-core/llm"
	"github.com/hearthware/wellness-core/logger"
	"github.com/hearthware/wellness-core/metrics"
	"github.com/hearthware/wellness-core/pipeline"
	"github.com/hearthware/wellness-core/qdrant"
	"github.com/hearthware/wellness-core/rabbit"
	"github.com/hearthware/wellness-core/store"
	"github.com/hearthware/wellness-core/tracer"
)

func main() {
	fx.New(
		fx.Provide(
			logger.NewConfig,
			tracer.NewConfig,
			metrics.NewConfig,
			store.NewConfig,
			qdrant.NewConfig,
			rabbit.NewConfig,
			llm.NewConfig,

			// Adapt the shared logger to the consumer-defined interfaces.
			func(l *logger.Logger) tracer.Logger { return l },
			func(l *logger.Logger) rabbit.Logger { return l },
		),

		logger.FXModule,
		tracer.FXModule,
		metrics.FXModule,
		store.FXModule,
		embedding.FXModule,
		llm.FXModule,
		qdrant.FXModule,
		rabbit.FXModule,
		pipeline.FXModule,
	).Run()
}
