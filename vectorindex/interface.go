package vectorindex

import "context"

// Service is the common interface for vector index backends.
// It provides a database-agnostic abstraction for the embedding pipeline's
// synchronizer, allowing the application to switch between vector databases
// (Qdrant, pgvector, etc.) without changing pipeline code.
//
// The pipeline relies on two contracts beyond the method signatures:
//
//   - Upserts have overwrite semantics: writing a point whose ID already
//     exists replaces its vector, payload, and text.
//   - DeleteByFilter removes every point whose payload matches all given
//     field/value pairs; matching zero points is not an error.
type Service interface {
	// InitializeCollection creates the collection if it doesn't exist, with
	// the given vector dimensionality. Safe to call repeatedly — a no-op if
	// the collection already exists (e.g. at the start of a bulk backfill).
	InitializeCollection(ctx context.Context, name string, vectorSize uint64) error

	// UpsertPoint writes a single point with overwrite semantics.
	UpsertPoint(ctx context.Context, collection string, point Point) error

	// UpsertPoints writes points in batches. Points are written in slice
	// order; a mid-batch failure leaves earlier batches applied.
	UpsertPoints(ctx context.Context, collection string, points []Point) error

	// DeleteByFilter removes every point whose payload matches all
	// field/value pairs in the filter.
	DeleteByFilter(ctx context.Context, collection string, filter Filter) error

	// Search performs similarity search, optionally constrained by a filter.
	Search(ctx context.Context, req SearchRequest) ([]SearchResult, error)

	// GetCollection retrieves metadata about a collection.
	GetCollection(ctx context.Context, name string) (*Collection, error)
}
