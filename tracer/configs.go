package tracer

import "os"

// Config holds settings for the OpenTelemetry tracer.
type Config struct {
	// ServiceName identifies this service in trace backends.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`

	// AppEnv is the deployment environment (e.g. "production", "staging").
	AppEnv string `yaml:"app_env" env:"APP_ENV"`

	// EnableExport controls whether spans are exported via OTLP HTTP.
	// The exporter endpoint is taken from the standard OTEL_EXPORTER_OTLP_*
	// environment variables.
	EnableExport bool `yaml:"enable_export" env:"TRACER_ENABLE_EXPORT"`
}

// NewConfig reads tracer configuration from environment variables.
func NewConfig() Config {
	return Config{
		ServiceName:  os.Getenv("SERVICE_NAME"),
		AppEnv:       os.Getenv("APP_ENV"),
		EnableExport: os.Getenv("TRACER_ENABLE_EXPORT") == "true",
	}
}
