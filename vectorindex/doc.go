// Package vectorindex provides a database-agnostic abstraction for the
// embedding pipeline's vector index.
//
// # Overview
//
// This package defines a common interface [Service] that can be implemented
// by different vector database adapters (Qdrant today; pgvector or others
// later), allowing the pipeline to switch backends without changing
// application code.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────┐
//	│                 Embedding Pipeline                  │
//	│   (uses vectorindex.Service — no DB imports)        │
//	└─────────────────────────┬───────────────────────────┘
//	                          │
//	                          ▼
//	┌─────────────────────────────────────────────────────┐
//	│              vectorindex.Service                    │
//	│        (common interface + agnostic types)          │
//	└─────────────────────────┬───────────────────────────┘
//	                          │
//	                          ▼
//	              ┌───────────────────┐
//	              │  qdrant.Adapter   │
//	              │   (implements)    │
//	              └───────────────────┘
//
// # Point Identity and Replace Semantics
//
// The pipeline keys every point deterministically by
// (document_type, source_id, chunk_index), so an upsert for the same source
// document overwrites prior points rather than duplicating them. Refreshing
// a document is a full replace: DeleteByFilter on
// {document_type, source_id} followed by upserts of the new chunk set.
//
// # Filters
//
// Filter is a flat conjunction of exact-match conditions:
//
//	vectorindex.Filter{
//	    vectorindex.FieldDocumentType: "recipe",
//	    vectorindex.FieldSourceID:     "42",
//	}
//
// Adapters convert it to their native filter representation.
//
// # Testing
//
// For testing, depend on the [Service] interface and substitute an in-memory
// fake; the pipeline package does exactly that in its unit tests.
package vectorindex
