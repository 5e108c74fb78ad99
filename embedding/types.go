package embedding

import "context"

// Provider contract
type Provider interface {
	// Create generates embeddings for the given texts, one vector per text,
	// in the same order as the input.
	Create(ctx context.Context, texts ...string) ([][]float32, error)
}
