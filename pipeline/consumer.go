package pipeline

import (
	"context"
	"sync"

	"github.com/hearthware/wellness-core/logger"
	"github.com/hearthware/wellness-core/rabbit"
	"github.com/hearthware/wellness-core/tracer"
)

// Consumer drains the embedding queue through a fixed pool of workers, each
// running tasks on a shared Orchestrator.
//
// Acking policy: completed and skipped tasks are acked. Failed tasks are
// nacked without requeue, which routes them to the dead-letter exchange;
// redelivery policy lives entirely in the broker topology.
type Consumer struct {
	queue        rabbit.Client
	orchestrator *Orchestrator
	tracer       *tracer.Tracer
	log          *logger.Logger
	workers      int

	wg sync.WaitGroup
}

func NewConsumer(queue rabbit.Client, orchestrator *Orchestrator, tr *tracer.Tracer, log *logger.Logger, workers int) *Consumer {
	if workers < 1 {
		workers = 1
	}
	return &Consumer{
		queue:        queue,
		orchestrator: orchestrator,
		tracer:       tr,
		log:          log,
		workers:      workers,
	}
}

// Start launches the worker pool. Workers exit when the context is canceled
// and the delivery channel drains.
func (c *Consumer) Start(ctx context.Context) {
	deliveries := c.queue.Consume(ctx, &c.wg)

	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.work(ctx, deliveries)
	}

	c.log.Info("Embedding consumer started", nil, map[string]interface{}{
		"workers": c.workers,
	})
}

// Wait blocks until every worker has returned.
func (c *Consumer) Wait() {
	c.wg.Wait()
}

func (c *Consumer) work(ctx context.Context, deliveries <-chan rabbit.Message) {
	defer c.wg.Done()

	for msg := range deliveries {
		c.handle(ctx, msg)
	}
}

func (c *Consumer) handle(ctx context.Context, msg rabbit.Message) {
	if c.tracer != nil {
		ctx = c.tracer.ExtractCarrier(ctx, msg.Header())
		spanCtx, span := c.tracer.StartSpan(ctx, "pipeline.handle")
		defer span.End()
		ctx = spanCtx
	}

	task, err := DecodeTask(msg.Body())
	if err != nil {
		// Malformed payloads can never succeed. Dead-letter them so they
		// stay inspectable without poisoning the main queue.
		c.log.WarnWithContext(ctx, "Discarding undecodable embedding task", err, nil)
		c.finish(ctx, msg.NackMsg(false))
		return
	}

	outcome, err := c.orchestrator.Process(ctx, task)
	if outcome == OutcomeFailed {
		c.log.ErrorWithContext(ctx, "Embedding task failed", err, taskFields(task))
		c.finish(ctx, msg.NackMsg(false))
		return
	}

	c.finish(ctx, msg.AckMsg())
}

func (c *Consumer) finish(ctx context.Context, err error) {
	if err != nil {
		c.log.ErrorWithContext(ctx, "Failed to settle queue message", err, nil)
	}
}
