// Package pipeline implements the embedding pipeline: queued tasks flow
// through load, format, chunk, embed, invalidate, and upsert stages to keep
// the vector index convergent with the relational store.
//
// # Task flow
//
//	┌──────────┐   publish    ┌────────────┐   deliver    ┌──────────────┐
//	│ Enqueuer │ ───────────► │  RabbitMQ  │ ───────────► │   Consumer   │
//	└──────────┘              └────────────┘              └──────┬───────┘
//	                                │ nack                       │
//	                                ▼                            ▼
//	                          ┌────────────┐              ┌──────────────┐
//	                          │    DLQ     │              │ Orchestrator │
//	                          └────────────┘              └──────────────┘
//
// Every task ends in exactly one of three outcomes: completed, skipped, or
// failed. Skips are acked (a vanished or empty document is not an error);
// failures are dead-lettered and the broker topology owns redelivery. The
// orchestrator itself never retries.
//
// # Idempotency
//
// Point ids are a deterministic function of (document_type, source_id,
// chunk_index), and every successful run deletes the document's previous
// points before upserting the new set. Processing the same task twice, or
// interleaving a stale redelivery with a fresh task, always converges on the
// current document content.
//
// # Retrieval
//
// Searcher answers similarity queries over the indexed corpus. Query text is
// sanitized before embedding and every search is filtered to a single
// household.
package pipeline
