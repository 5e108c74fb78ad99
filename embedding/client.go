package embedding

import (
	"context"
	"fmt"
)

// Client is the public entrypoint for computing embeddings.
//
// It hides all provider details (inference endpoints, HTTP, etc.)
// from the application layer.
type Client struct {
	provider   Provider
	dimensions int
	batchSize  int
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the inference provider.
// Application code should depend on *Client, not on Provider or the inference
// implementation.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	p, err := newInferenceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	batch := cfg.MaxBatchSize
	if batch <= 0 {
		batch = 64
	}

	return &Client{provider: p, dimensions: cfg.Dimensions, batchSize: batch}, nil
}

// Dimensions reports the vector size the configured model produces.
// The vector index collection must be created with the same size.
func (c *Client) Dimensions() int {
	return c.dimensions
}

// EmbedBatch computes one vector per input text, preserving input order.
// Inputs larger than the configured batch size are split into sequential
// provider calls; a failure in any sub-batch fails the whole call so the
// caller never receives a partial result.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += c.batchSize {
		end := start + c.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		batch, err := c.provider.Create(ctx, texts[start:end]...)
		if err != nil {
			return nil, err
		}
		if len(batch) != end-start {
			return nil, fmt.Errorf("embedding: provider returned %d vectors for %d texts", len(batch), end-start)
		}
		for i, v := range batch {
			if len(v) != c.dimensions {
				return nil, fmt.Errorf("embedding: vector %d has %d dimensions, expected %d", start+i, len(v), c.dimensions)
			}
		}

		vectors = append(vectors, batch...)
	}

	return vectors, nil
}

// Embed computes the vector for a single text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedding: expected 1 vector, got %d", len(vectors))
	}
	return vectors[0], nil
}

// Close allows the client to release any internal resources used by the provider.
// Currently this is a no-op unless the provider implements Close().
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
