package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/hearthware/wellness-core/logger"
)

// QdrantClient wraps the official Qdrant Go client
// and provides the vector index operations the embedding pipeline needs.
type QdrantClient struct {
	api     *qdrant.Client
	cfg     *Config
	log     *logger.Logger
	started bool
}

// defaultBatchSize is the chunk size for batch upserts.
const defaultBatchSize = 200

// NewQdrantClient constructs a new instance of QdrantClient and validates
// connectivity via a health check.
//
// The Qdrant Go SDK creates lightweight gRPC connections, so this method
// performs an immediate health check to fail fast if the service is unreachable.
func NewQdrantClient(cfg *Config, log *logger.Logger) (*QdrantClient, error) {
	log.Info("Connecting to Qdrant", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"port":     cfg.Port,
	})

	// Set default port if not specified
	port := cfg.Port
	if port == 0 {
		port = 6334
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   port,
		APIKey:                 cfg.ApiKey,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to initialize client: %w", err)
	}

	qc := &QdrantClient{
		api:     client,
		cfg:     cfg,
		log:     log,
		started: true,
	}

	if err := qc.healthCheck(); err != nil {
		return nil, fmt.Errorf("qdrant: health check failed: %w", err)
	}

	log.Info("Qdrant client connected", nil, nil)
	return qc, nil
}

// healthCheck verifies the availability of the Qdrant service.
// It is lightweight and fast — used during startup and readiness probes.
func (c *QdrantClient) healthCheck() error {
	if !c.started {
		return fmt.Errorf("qdrant: client not started")
	}
	if c.api == nil {
		return fmt.Errorf("qdrant: client not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("qdrant: health check failed: %w", err)
	}

	c.log.Info("Qdrant health check passed", nil, map[string]interface{}{
		"title":    resp.Title,
		"version":  resp.Version,
		"endpoint": c.cfg.Endpoint,
	})

	return nil
}

// Client returns the underlying Qdrant SDK client.
// This is useful for direct access to low-level operations.
func (c *QdrantClient) Client() *qdrant.Client {
	return c.api
}

// Close gracefully shuts down the Qdrant client.
//
// The official Qdrant Go SDK doesn't maintain persistent connections, so this
// is currently a no-op. It exists for lifecycle symmetry.
func (c *QdrantClient) Close() error {
	if !c.started {
		return nil
	}

	c.log.Debug("closing Qdrant client (no-op)", nil, nil)
	return nil
}
