// Package metrics exposes Prometheus metrics for the embedding pipeline.
//
// Each service gets an isolated registry with a constant "service" label and
// an HTTP server serving /metrics, managed through the Fx lifecycle.
//
// # Built-in Pipeline Metrics
//
//   - embedding_tasks_total{document_type,status} — terminal outcomes of
//     embedding tasks (completed, skipped, failed)
//   - pipeline_stage_duration_seconds{stage} — latency per pipeline stage
//     (load, format, chunk, embed, invalidate, upsert)
//   - document_chunks{document_type} — chunks produced per document
//
// # Usage
//
//	defer m.RecordStageDuration(time.Now(), "embed")
//	m.IncrementTasks("recipe", "completed")
//
// Additional metrics can be registered at runtime with CreateCounter,
// CreateHistogram, and CreateGauge.
package metrics
