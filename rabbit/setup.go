package rabbit

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitClient manages the AMQP connection and channel for the embedding
// task queue, reconnecting automatically when the broker drops the link.
type RabbitClient struct {
	cfg Config

	Channel *amqp.Channel
	conn    *amqp.Connection

	logger Logger

	mu                sync.RWMutex
	shutdownSignal    chan struct{}
	closeShutdownOnce sync.Once
}

// NewClient connects to RabbitMQ and sets up the channel topology.
func NewClient(config Config) (*RabbitClient, error) {
	con, err := newConnection(config)
	if err != nil {
		return nil, fmt.Errorf("rabbit: connect: %w", err)
	}

	ch, err := connectToChannel(con, config)
	if err != nil {
		return nil, fmt.Errorf("rabbit: channel setup: %w", err)
	}

	return &RabbitClient{
		cfg:            config,
		conn:           con,
		Channel:        ch,
		shutdownSignal: make(chan struct{}),
	}, nil
}

// connectToChannel opens a channel and, for consumers, declares the exchange,
// the main queue, and the dead-letter topology.
func connectToChannel(conn *amqp.Connection, cfg Config) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	if err = ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	if !cfg.Channel.IsConsumer {
		return ch, nil
	}

	err = ch.ExchangeDeclare(
		cfg.Channel.ExchangeName,
		cfg.Channel.ExchangeType,
		true,  // Durable
		false, // AutoDelete
		false, // Internal
		false, // NoWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	queueArgs := amqp.Table{}
	if cfg.DeadLetter.ExchangeName != "" && cfg.DeadLetter.Ttl > 0 {
		err = ch.ExchangeDeclare(
			cfg.DeadLetter.ExchangeName,
			"direct",
			true, false, false, false, nil,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to declare dead letter exchange: %w", err)
		}

		_, err = ch.QueueDeclare(
			cfg.DeadLetter.QueueName,
			true, false, false, false, nil,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to declare dead letter queue: %w", err)
		}

		err = ch.QueueBind(
			cfg.DeadLetter.QueueName,
			cfg.DeadLetter.RoutingKey,
			cfg.DeadLetter.ExchangeName,
			false, nil,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to bind dead letter queue: %w", err)
		}

		queueArgs = amqp.Table{
			"x-dead-letter-exchange":    cfg.DeadLetter.ExchangeName,
			"x-dead-letter-routing-key": cfg.DeadLetter.RoutingKey,
			"x-message-ttl":             cfg.DeadLetter.Ttl * 1000, // seconds to ms
		}
	}

	_, err = ch.QueueDeclare(
		cfg.Channel.QueueName,
		true, false, false, false,
		queueArgs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = ch.QueueBind(
		cfg.Channel.QueueName,
		cfg.Channel.RoutingKey,
		cfg.Channel.ExchangeName,
		false, nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	if cfg.Channel.PrefetchCount > 0 {
		if err = ch.Qos(cfg.Channel.PrefetchCount, 0, false); err != nil {
			return nil, fmt.Errorf("failed to set QoS: %w", err)
		}
	}

	return ch, nil
}

// RetryConnection monitors the connection and re-establishes it on failure.
// Run in a goroutine; returns when the client shuts down.
func (rb *RabbitClient) RetryConnection(cfg Config) {
	defer rb.closeShutdownOnce.Do(func() {
		close(rb.shutdownSignal)
	})
outerLoop:
	for {
		errChan := make(chan *amqp.Error, 1)
		rb.conn.NotifyClose(errChan)

		select {
		case <-rb.shutdownSignal:
			return

		case err := <-errChan:
			rb.logWarn(context.Background(), "RabbitMQ connection closed, retrying", map[string]interface{}{
				"error": fmt.Sprintf("%v", err),
			})
			for {
				select {
				case <-rb.shutdownSignal:
					return
				default:
				}

				newConn, err := newConnection(cfg)
				if err != nil {
					rb.logError(context.Background(), "RabbitMQ reconnection failed", map[string]interface{}{
						"error": err.Error(),
					})
					time.Sleep(time.Second)
					continue
				}

				rb.mu.Lock()
				rb.conn = newConn
				if rb.Channel != nil {
					_ = rb.Channel.Close()
				}
				rb.Channel, err = connectToChannel(newConn, cfg)
				rb.mu.Unlock()

				if err != nil {
					rb.logError(context.Background(), "Failed to re-establish RabbitMQ channel", map[string]interface{}{
						"error": err.Error(),
					})
					continue
				}

				rb.logInfo(context.Background(), "Reconnected to RabbitMQ", nil)
				continue outerLoop
			}
		}
	}
}

// newConnection dials the broker, choosing amqp or amqps per config. A short
// heartbeat keeps dead connections from lingering.
func newConnection(cfg Config) (*amqp.Connection, error) {
	scheme := "amqp"
	if cfg.Connection.IsSSLEnabled {
		scheme = "amqps"
	}
	hostURL := fmt.Sprintf("%s://%v:%v@%v:%v", scheme,
		cfg.Connection.User, cfg.Connection.Password,
		cfg.Connection.Host, cfg.Connection.Port)

	conn, err := amqp.DialConfig(hostURL, amqp.Config{
		Heartbeat: 2 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbit at %s:%d: %w",
			cfg.Connection.Host, cfg.Connection.Port, err)
	}
	return conn, nil
}

// GracefulShutdown closes the channel and connection cleanly.
func (rb *RabbitClient) GracefulShutdown() {
	rb.closeShutdownOnce.Do(func() {
		close(rb.shutdownSignal)
	})

	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.logInfo(context.Background(), "Shutting down RabbitMQ client", nil)

	if rb.Channel != nil {
		if err := rb.Channel.Close(); err != nil {
			rb.logWarn(context.Background(), "Failed to close rabbit channel", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	if rb.conn != nil && !rb.conn.IsClosed() {
		if err := rb.conn.Close(); err != nil {
			rb.logWarn(context.Background(), "Failed to close rabbit connection", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

// GetChannel exposes the underlying AMQP channel for direct operations.
func (rb *RabbitClient) GetChannel() *amqp.Channel {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.Channel
}

func (rb *RabbitClient) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if rb.logger != nil {
		rb.logger.InfoWithContext(ctx, msg, nil, fields)
	}
}

func (rb *RabbitClient) logWarn(ctx context.Context, msg string, fields map[string]interface{}) {
	if rb.logger != nil {
		rb.logger.WarnWithContext(ctx, msg, nil, fields)
	}
}

func (rb *RabbitClient) logError(ctx context.Context, msg string, fields map[string]interface{}) {
	if rb.logger != nil {
		rb.logger.ErrorWithContext(ctx, msg, nil, fields)
	}
}
