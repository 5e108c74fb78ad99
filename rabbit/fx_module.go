package rabbit

import (
	"context"
	"sync"

	"go.uber.org/fx"
)

// FXModule provides the RabbitMQ client to the Fx container, both as
// *RabbitClient and behind the Client interface, with lifecycle hooks for
// connection monitoring and graceful shutdown.
var FXModule = fx.Module("rabbit",
	fx.Provide(
		NewClientWithDI,
		fx.Annotate(
			func(r *RabbitClient) Client { return r },
			fx.As(new(Client)),
		),
	),
	fx.Invoke(RegisterRabbitLifecycle),
)

// RabbitParams groups the dependencies needed to create a Rabbit client.
type RabbitParams struct {
	fx.In

	Config Config
	Logger Logger `optional:"true"`
}

// NewClientWithDI creates the client and injects the optional logger.
func NewClientWithDI(params RabbitParams) (*RabbitClient, error) {
	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}

	if params.Logger != nil {
		client.logger = params.Logger
	}

	return client, nil
}

// RabbitLifecycleParams groups the dependencies for lifecycle management.
type RabbitLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *RabbitClient
	Config    Config
}

// RegisterRabbitLifecycle starts connection monitoring on application start
// and shuts the client down cleanly on stop.
func RegisterRabbitLifecycle(params RabbitLifecycleParams) {
	wg := &sync.WaitGroup{}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			wg.Add(1)
			go func(cfg Config) {
				defer wg.Done()
				params.Client.RetryConnection(cfg)
			}(params.Config)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Client.GracefulShutdown()
			wg.Wait()
			return nil
		},
	})
}
