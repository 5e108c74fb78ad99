package pipeline

import (
	"context"
	"fmt"

	"github.com/hearthware/wellness-core/logger"
	"github.com/hearthware/wellness-core/rabbit"
	"github.com/hearthware/wellness-core/tracer"
)

// Enqueuer publishes embedding tasks onto the queue. Publishing is the only
// side effect; all processing happens in the consumer.
type Enqueuer struct {
	queue  rabbit.Client
	tracer *tracer.Tracer
	log    *logger.Logger
}

func NewEnqueuer(queue rabbit.Client, tr *tracer.Tracer, log *logger.Logger) *Enqueuer {
	return &Enqueuer{queue: queue, tracer: tr, log: log}
}

// EnqueueEmbedding validates and publishes a single task. Trace context is
// propagated through message headers so the consumer can continue the span.
func (e *Enqueuer) EnqueueEmbedding(ctx context.Context, task EmbeddingTask) error {
	if err := task.Validate(); err != nil {
		return err
	}

	body, err := task.Encode()
	if err != nil {
		return fmt.Errorf("encode embedding task: %w", err)
	}

	var headers map[string]interface{}
	if e.tracer != nil {
		headers = e.tracer.GetCarrier(ctx)
	}

	if err := e.queue.Publish(ctx, body, headers); err != nil {
		return fmt.Errorf("publish embedding task: %w", err)
	}

	e.log.DebugWithContext(ctx, "Embedding task enqueued", nil, taskFields(task))
	return nil
}
