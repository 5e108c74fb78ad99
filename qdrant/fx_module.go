package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/hearthware/wellness-core/vectorindex"
)

// FXModule defines the Fx module for the qdrant package.
//
// The module:
//  1. Provides the NewQdrantClient factory function to the dependency injection container
//  2. Binds the client to the vectorindex.Service interface
//  3. Invokes RegisterQdrantLifecycle to close the connection on shutdown
//
// Dependencies required by this module:
// - A qdrant.Config instance must be available in the dependency injection container
// - A logger.Logger instance must be available in the dependency injection container
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewQdrantClient,
		func(c *QdrantClient) vectorindex.Service { return c },
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// RegisterQdrantLifecycle handles graceful shutdown of the Qdrant connection.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *QdrantClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
