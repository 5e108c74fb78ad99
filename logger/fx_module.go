package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the logger package.
//
// The module:
//  1. Provides the NewLoggerClient factory function to the dependency injection container
//  2. Invokes RegisterLoggerLifecycle to flush buffered entries on shutdown
//
// Dependencies required by this module:
// - A logger.Config instance must be available in the dependency injection container
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle handles cleanup (sync) of the Zap logger.
// The OnStop hook calls Sync() on the underlying Zap logger so that no log
// entries are lost if the application shuts down while logs are still
// buffered in memory.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync() // flushes any buffered logs
		},
	})
}
