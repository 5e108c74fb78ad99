// Package store reads domain records from the relational database for the
// embedding pipeline.
//
// The pipeline is read-only against the source of truth. Load fetches one
// record with its relations; ListRefs enumerates identity rows for backfill.
// A vanished record surfaces as ErrNotFound, which the pipeline maps to a
// skip rather than a failure.
package store
