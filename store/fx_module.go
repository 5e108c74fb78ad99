package store

import (
	"context"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the store package.
//
// Dependencies required by this module:
// - A store.Config instance must be available in the dependency injection container
// - A logger.Logger instance must be available in the dependency injection container
var FXModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
	fx.Invoke(RegisterStoreLifecycle),
)

// RegisterStoreLifecycle closes the connection pool on shutdown.
func RegisterStoreLifecycle(lc fx.Lifecycle, s *Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return s.Close()
		},
	})
}
