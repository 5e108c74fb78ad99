package pipeline

import (
	"context"

	"go.uber.org/fx"

	"github.com/hearthware/wellness-core/embedding"
	"github.com/hearthware/wellness-core/logger"
	"github.com/hearthware/wellness-core/metrics"
	"github.com/hearthware/wellness-core/rabbit"
	"github.com/hearthware/wellness-core/store"
	"github.com/hearthware/wellness-core/tracer"
	"github.com/hearthware/wellness-core/vectorindex"
)

// FXModule wires the embedding pipeline into Fx.
//
// It provides the orchestrator, enqueuer, consumer, backfiller, and searcher,
// binding the pipeline's narrow collaborator interfaces to their concrete
// implementations elsewhere in the container.
var FXModule = fx.Module("pipeline",
	fx.Provide(
		NewConfig,
		func(s *store.Store) Loader { return s },
		func(c *embedding.Client) Embedder { return c },
		NewOrchestratorWithDI,
		NewEnqueuerWithDI,
		NewConsumerWithDI,
		NewBackfiller,
		NewSearcherWithDI,
	),
	fx.Invoke(RegisterPipelineLifecycle),
)

// OrchestratorParams groups the orchestrator's dependencies. Metrics are
// optional so unit wiring can omit them.
type OrchestratorParams struct {
	fx.In

	Config   Config
	Loader   Loader
	Embedder Embedder
	Index    vectorindex.Service
	Logger   *logger.Logger
	Metrics  *metrics.Metrics `optional:"true"`
}

func NewOrchestratorWithDI(params OrchestratorParams) *Orchestrator {
	var observer Observer
	if params.Metrics != nil {
		observer = params.Metrics
	}
	return NewOrchestrator(params.Loader, params.Embedder, params.Index, params.Config.Collection, params.Logger, observer)
}

// EnqueuerParams groups the enqueuer's dependencies. The tracer is optional.
type EnqueuerParams struct {
	fx.In

	Queue  rabbit.Client
	Tracer *tracer.Tracer `optional:"true"`
	Logger *logger.Logger
}

func NewEnqueuerWithDI(params EnqueuerParams) *Enqueuer {
	return NewEnqueuer(params.Queue, params.Tracer, params.Logger)
}

// ConsumerParams groups the consumer's dependencies. The tracer is optional.
type ConsumerParams struct {
	fx.In

	Config       Config
	Queue        rabbit.Client
	Orchestrator *Orchestrator
	Tracer       *tracer.Tracer `optional:"true"`
	Logger       *logger.Logger
}

func NewConsumerWithDI(params ConsumerParams) *Consumer {
	return NewConsumer(params.Queue, params.Orchestrator, params.Tracer, params.Logger, params.Config.Workers)
}

func NewSearcherWithDI(cfg Config, embedder Embedder, index vectorindex.Service) *Searcher {
	return NewSearcher(embedder, index, cfg.Collection)
}

// PipelineLifecycleParams groups lifecycle dependencies.
type PipelineLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    Config
	Embedding *embedding.Client
	Index     vectorindex.Service
	Consumer  *Consumer
}

// RegisterPipelineLifecycle ensures the collection exists with the provider's
// vector dimensionality, then starts the consumer pool on application start.
func RegisterPipelineLifecycle(params PipelineLifecycleParams) {
	runCtx, cancel := context.WithCancel(context.Background())

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			size := uint64(params.Embedding.Dimensions())
			if err := params.Index.InitializeCollection(ctx, params.Config.Collection, size); err != nil {
				cancel()
				return err
			}
			params.Consumer.Start(runCtx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			params.Consumer.Wait()
			return nil
		},
	})
}
