package embedding

import (
	"fmt"
	"os"
	"strconv"
)

// EMBEDDING_ENDPOINT must point to the root of the OpenAI-compatible inference
// service (no /embeddings appended). The provider appends paths automatically,
// so callers only need to supply the host base URL.

type Config struct {
	// Inference endpoint and auth
	Endpoint     string // Base URL of the embedding inference API
	ServiceToken string // Bearer token for the inference service
	Model        string // Embedding model identifier
	Dimensions   int    // Vector dimensionality produced by the model (default 1536)
	HTTPTimeoutS int    // HTTP timeout seconds (default 30)

	// MaxBatchSize caps how many texts go into one inference request.
	// Larger inputs are split into sequential requests.
	MaxBatchSize int
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	timeout := 30
	if v := os.Getenv("EMBEDDING_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	dimensions := 1536
	if v := os.Getenv("EMBEDDING_DIMENSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			dimensions = n
		}
	}

	batch := 64
	if v := os.Getenv("EMBEDDING_MAX_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			batch = n
		}
	}

	model := os.Getenv("EMBEDDING_MODEL")
	if model == "" {
		model = "text-embedding-3-small"
	}

	return &Config{
		Endpoint:     os.Getenv("EMBEDDING_ENDPOINT"),
		ServiceToken: os.Getenv("EMBEDDING_SERVICE_TOKEN"),
		Model:        model,
		Dimensions:   dimensions,
		HTTPTimeoutS: timeout,
		MaxBatchSize: batch,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_ENDPOINT")
	}
	if c.ServiceToken == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_SERVICE_TOKEN")
	}
	if c.Dimensions <= 0 {
		return fmt.Errorf("embedding: dimensions must be positive")
	}
	return nil
}
