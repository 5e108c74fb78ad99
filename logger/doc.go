// Package logger provides structured logging for the wellness-core services.
//
// It wraps Uber's Zap logger with a simplified key-value interface, optional
// OpenTelemetry trace correlation, and an Fx module for dependency injection.
//
// # Direct Usage
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         "info",
//		ServiceName:   "wellness-worker",
//		EnableTracing: true,
//	})
//
//	log.Info("task processed", nil, map[string]interface{}{
//		"document_type": "recipe",
//		"source_id":     "42",
//	})
//
// # Context-Aware Logging
//
// The *WithContext methods extract trace and span IDs from the context when
// tracing is enabled, correlating log entries with distributed traces:
//
//	log.InfoWithContext(ctx, "embedding upserted", nil, map[string]interface{}{
//		"points": 3,
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(logger.NewConfig),
//		// other modules...
//	)
//
// # Configuration
//
// The logger can be configured via environment variables:
//
//	ZAP_LOGGER_LEVEL=debug          # Log level (debug, info, warning, error)
//	SERVICE_NAME=wellness-worker    # Attached to every entry
//	LOGGER_ENABLE_TRACING=true      # Enable trace/span ID extraction
//
// # Thread Safety
//
// All methods on Logger are safe for concurrent use by multiple goroutines.
package logger
