package metrics

import "os"

// Config holds settings for the Prometheus metrics server.
type Config struct {
	// Address is the listen address for the /metrics endpoint, e.g. ":9090".
	Address string `yaml:"address" env:"METRICS_ADDRESS"`

	// ServiceName is attached as a constant "service" label to all metrics.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go, process, and build info
	// collectors in addition to the application metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_DEFAULT_COLLECTORS"`
}

// NewConfig reads metrics configuration from environment variables.
func NewConfig() Config {
	address := os.Getenv("METRICS_ADDRESS")
	if address == "" {
		address = ":9090"
	}

	return Config{
		Address:                 address,
		ServiceName:             os.Getenv("SERVICE_NAME"),
		EnableDefaultCollectors: os.Getenv("METRICS_DEFAULT_COLLECTORS") != "false",
	}
}
