package logger

import "os"

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls the behavior of the zap-backed logger.
type Config struct {
	// Level is the minimum level that will be emitted.
	// One of: debug, info, warning, error.
	Level string `yaml:"level" env:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`

	// EnableTracing makes the *WithContext methods extract trace and span
	// IDs from the OpenTelemetry span context and attach them to entries.
	EnableTracing bool `yaml:"enable_tracing" env:"LOGGER_ENABLE_TRACING"`
}

// NewConfig reads logger configuration from environment variables.
func NewConfig() Config {
	return Config{
		Level:         os.Getenv("ZAP_LOGGER_LEVEL"),
		ServiceName:   os.Getenv("SERVICE_NAME"),
		EnableTracing: os.Getenv("LOGGER_ENABLE_TRACING") == "true",
	}
}
