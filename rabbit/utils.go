package rabbit

import (
	"context"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConsumerMessage wraps an AMQP delivery behind the Message interface.
type ConsumerMessage struct {
	body     []byte
	delivery *amqp.Delivery
}

// consumeQueue delivers messages from one queue into a buffered channel,
// re-establishing the consumer whenever the broker closes it.
func (rb *RabbitClient) consumeQueue(ctx context.Context, wg *sync.WaitGroup, queueName string) <-chan Message {
	outChan := make(chan Message, 100)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(outChan)
	outerLoop:
		for {
			select {
			case <-rb.shutdownSignal:
				rb.logInfo(ctx, "Stopping consumer due to shutdown signal", map[string]interface{}{
					"queue": queueName,
				})
				return
			case <-ctx.Done():
				rb.logInfo(ctx, "Stopping consumer due to context cancellation", map[string]interface{}{
					"queue": queueName,
				})
				return
			default:
				rb.mu.RLock()
				msgs, err := rb.Channel.Consume(
					queueName,
					"",    // consumer
					false, // autoAck
					false, // exclusive
					false, // noLocal
					false, // noWait
					nil,
				)
				rb.mu.RUnlock()

				if err != nil {
					rb.logError(ctx, "Failed to establish consumer", map[string]interface{}{
						"queue": queueName,
						"error": err.Error(),
					})
					time.Sleep(100 * time.Millisecond)
					continue
				}

				for {
					select {
					case <-ctx.Done():
						return
					case <-rb.shutdownSignal:
						return
					case msg, ok := <-msgs:
						if !ok {
							continue outerLoop
						}
						outChan <- &ConsumerMessage{
							body:     msg.Body,
							delivery: &msg,
						}
					}
				}
			}
		}
	}()
	return outChan
}

// Consume starts consuming from the main task queue.
func (rb *RabbitClient) Consume(ctx context.Context, wg *sync.WaitGroup) <-chan Message {
	return rb.consumeQueue(ctx, wg, rb.cfg.Channel.QueueName)
}

// ConsumeDLQ starts consuming from the dead-letter queue, used by tooling
// that inspects or replays failed tasks.
func (rb *RabbitClient) ConsumeDLQ(ctx context.Context, wg *sync.WaitGroup) <-chan Message {
	return rb.consumeQueue(ctx, wg, rb.cfg.DeadLetter.QueueName)
}

// Publish sends a message to the configured exchange. Headers typically carry
// the trace carrier so consumers can continue the publisher's trace.
func (rb *RabbitClient) Publish(ctx context.Context, msg []byte, headers ...map[string]interface{}) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	var header map[string]interface{}
	if len(headers) > 0 {
		header = headers[0]
	}

	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.Channel.Publish(
		rb.cfg.Channel.ExchangeName,
		rb.cfg.Channel.RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			Headers:     header,
			ContentType: rb.cfg.Channel.ContentType,
			Body:        msg,
		},
	)
}

func (m *ConsumerMessage) AckMsg() error {
	return m.delivery.Ack(false)
}

func (m *ConsumerMessage) NackMsg(requeue bool) error {
	return m.delivery.Nack(false, requeue)
}

func (m *ConsumerMessage) Body() []byte {
	return m.body
}

func (m *ConsumerMessage) Header() map[string]interface{} {
	return m.delivery.Headers
}
