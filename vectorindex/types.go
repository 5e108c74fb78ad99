package vectorindex

// Payload field names shared between the pipeline and index adapters.
// Every point written by the embedding pipeline carries these keys so that
// delete-by-filter and household-scoped search work uniformly across backends.
const (
	FieldHouseholdID  = "household_id"
	FieldUserID       = "user_id"
	FieldDocumentType = "document_type"
	FieldSourceID     = "source_id"
	FieldChunkIndex   = "chunk_index"
	FieldDate         = "date"
	FieldText         = "text"
)

// Filter is a conjunction of exact-match conditions on payload fields.
// A point matches when every field equals the given value.
// Supported value types: string, bool, int, int64.
type Filter map[string]any

// Point is one embedded chunk as stored in the index.
type Point struct {
	// ID is the unique identifier for this point. The pipeline derives it
	// deterministically from (document_type, source_id, chunk_index) so that
	// re-running for the same source overwrites rather than duplicates.
	ID string `json:"id"`

	// Vector is the dense embedding representation.
	Vector []float32 `json:"vector"`

	// Payload is the metadata stored with the vector.
	Payload map[string]any `json:"payload,omitempty"`

	// Text is the chunk text the vector was computed from. Adapters store it
	// in the payload under FieldText.
	Text string `json:"text,omitempty"`
}

// SearchRequest represents a single similarity search query.
type SearchRequest struct {
	// CollectionName is the target collection to search in.
	CollectionName string `json:"collectionName"`

	// Vector is the query embedding to find similar vectors for.
	Vector []float32 `json:"vector"`

	// TopK is the maximum number of results to return.
	TopK int `json:"maxResults"`

	// Filter is optional exact-match payload filtering (AND logic).
	Filter Filter `json:"filter,omitempty"`
}

// SearchResult represents a single search result with its similarity score.
// This is database-agnostic — payload is converted to map[string]any.
type SearchResult struct {
	// ID is the unique identifier of the matched point.
	ID string `json:"id"`

	// Score is the similarity score (higher = more similar for cosine).
	Score float32 `json:"score"`

	// Payload contains the metadata stored with the vector.
	Payload map[string]any `json:"payload"`
}

// Collection contains metadata about a vector collection.
type Collection struct {
	// Name is the unique identifier of the collection.
	Name string `json:"name"`

	// Status indicates the operational state (e.g., "Green", "Yellow").
	Status string `json:"status"`

	// VectorSize is the dimension of vectors in this collection.
	VectorSize int `json:"vectorSize"`

	// Distance is the similarity metric (e.g., "Cosine", "Dot", "Euclid").
	Distance string `json:"distance"`

	// PointCount is the number of stored points.
	PointCount uint64 `json:"pointCount"`
}
