package rabbit

import (
	"context"
	"os"
	"strconv"
)

// Config holds connection, channel, and dead-letter settings for the
// embedding task queue.
type Config struct {
	Connection Connection
	Channel    Channel
	DeadLetter DeadLetter
}

// Connection contains the settings needed to reach the RabbitMQ server.
type Connection struct {
	Host         string
	Port         uint
	User         string
	Password     string
	IsSSLEnabled bool
}

// Channel configures the exchange, queue, and consumer behavior.
type Channel struct {
	ExchangeName string
	ExchangeType string
	RoutingKey   string
	QueueName    string

	// PrefetchCount limits unacknowledged deliveries per consumer.
	PrefetchCount int

	// IsConsumer controls whether exchanges and queues are declared on
	// channel setup. Publishers rely on the consumer side having done so.
	IsConsumer bool

	ContentType string
}

// DeadLetter configures the exchange and queue that failed tasks land on.
// Ttl is the main-queue message TTL in seconds; zero disables dead-lettering.
type DeadLetter struct {
	ExchangeName string
	QueueName    string
	RoutingKey   string
	Ttl          int
}

// NewConfig reads queue settings from the environment with defaults suited
// to the embedding worker.
func NewConfig() Config {
	port := uint(5672)
	if v := os.Getenv("RABBIT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			port = uint(n)
		}
	}

	prefetch := 8
	if v := os.Getenv("RABBIT_PREFETCH_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			prefetch = n
		}
	}

	return Config{
		Connection: Connection{
			Host:         envOr("RABBIT_HOST", "localhost"),
			Port:         port,
			User:         envOr("RABBIT_USER", "guest"),
			Password:     envOr("RABBIT_PASSWORD", "guest"),
			IsSSLEnabled: os.Getenv("RABBIT_SSL_ENABLED") == "true",
		},
		Channel: Channel{
			ExchangeName:  envOr("RABBIT_EXCHANGE", "wellness.embeddings"),
			ExchangeType:  "direct",
			RoutingKey:    envOr("RABBIT_ROUTING_KEY", "embedding.task"),
			QueueName:     envOr("RABBIT_QUEUE", "embedding-tasks"),
			PrefetchCount: prefetch,
			IsConsumer:    true,
			ContentType:   "application/json",
		},
		DeadLetter: DeadLetter{
			ExchangeName: envOr("RABBIT_DLX", "wellness.embeddings.dlx"),
			QueueName:    envOr("RABBIT_DLQ", "embedding-tasks-dead"),
			RoutingKey:   "embedding.task.dead",
			Ttl:          86400,
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Logger matches the logger package's context-aware methods so this package
// does not depend on a concrete logger type.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
