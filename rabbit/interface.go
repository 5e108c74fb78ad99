package rabbit

import (
	"context"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Client is the queue abstraction the pipeline depends on. Implemented by
// *RabbitClient.
type Client interface {
	// Publish sends a message to the configured exchange and routing key.
	// Headers are optional and typically carry trace context.
	Publish(ctx context.Context, msg []byte, headers ...map[string]interface{}) error

	// Consume starts consuming from the main queue. The returned channel
	// closes when the context is canceled or the client shuts down.
	Consume(ctx context.Context, wg *sync.WaitGroup) <-chan Message

	// ConsumeDLQ starts consuming from the dead-letter queue.
	ConsumeDLQ(ctx context.Context, wg *sync.WaitGroup) <-chan Message

	RetryConnection(cfg Config)
	GracefulShutdown()
	GetChannel() *amqp.Channel
}

// Message is one consumed delivery.
type Message interface {
	// AckMsg acknowledges the message, removing it from the queue.
	AckMsg() error

	// NackMsg rejects the message. With requeue false the broker routes it
	// to the dead-letter exchange if one is configured.
	NackMsg(requeue bool) error

	Body() []byte
	Header() map[string]interface{}
}
