package pipeline

import (
	"os"
	"strconv"
)

// Config controls the consumer pool and the target collection.
type Config struct {
	// Collection is the vector index collection the pipeline writes to and
	// the searcher reads from.
	Collection string `yaml:"collection" env:"EMBEDDING_COLLECTION"`

	// Workers is the number of concurrent consumers draining the queue.
	Workers int `yaml:"workers" env:"PIPELINE_WORKERS"`
}

// NewConfig reads pipeline settings from the environment with defaults
// matching the broker prefetch.
func NewConfig() Config {
	cfg := Config{
		Collection: "wellness_documents",
		Workers:    4,
	}

	if v := os.Getenv("EMBEDDING_COLLECTION"); v != "" {
		cfg.Collection = v
	}
	if v := os.Getenv("PIPELINE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	return cfg
}
