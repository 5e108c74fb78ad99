package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hearthware/wellness-core/chunk"
	"github.com/hearthware/wellness-core/document"
	"github.com/hearthware/wellness-core/logger"
	"github.com/hearthware/wellness-core/store"
	"github.com/hearthware/wellness-core/vectorindex"
)

// Loader fetches domain records. Implemented by *store.Store.
type Loader interface {
	Load(ctx context.Context, t document.Type, id string) (document.Document, error)
	ListRefs(ctx context.Context, t document.Type, householdID string) ([]document.Ref, error)
}

// Embedder computes one vector per text, order preserving. Implemented by
// *embedding.Client.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Observer receives pipeline metrics. Implemented by *metrics.Metrics.
type Observer interface {
	IncrementTasks(documentType, status string)
	RecordStageDuration(start time.Time, stage string)
	ObserveChunkCount(documentType string, count int)
}

// Orchestrator executes one embedding task end to end: load, format, chunk,
// embed, invalidate old points, upsert new points.
//
// It performs no internal retries and holds no state between tasks, so it is
// safe to re-invoke from the top on every queue redelivery. Idempotency
// comes from deterministic point ids plus the delete-then-upsert full
// replace.
type Orchestrator struct {
	loader     Loader
	embedder   Embedder
	index      vectorindex.Service
	collection string
	log        *logger.Logger
	observer   Observer
}

// NewOrchestrator wires the pipeline stages together. The observer may be
// nil.
func NewOrchestrator(loader Loader, embedder Embedder, index vectorindex.Service, collection string, log *logger.Logger, observer Observer) *Orchestrator {
	return &Orchestrator{
		loader:     loader,
		embedder:   embedder,
		index:      index,
		collection: collection,
		log:        log,
		observer:   observer,
	}
}

// Process runs the task to a terminal state. The returned error is non-nil
// only for OutcomeFailed, where it describes the failing stage for the
// queue's retry machinery.
func (o *Orchestrator) Process(ctx context.Context, task EmbeddingTask) (Outcome, error) {
	outcome, err := o.run(ctx, task)

	if o.observer != nil {
		o.observer.IncrementTasks(string(task.DocumentType), string(outcome))
	}
	return outcome, err
}

func (o *Orchestrator) run(ctx context.Context, task EmbeddingTask) (Outcome, error) {
	if err := task.Validate(); err != nil {
		// A malformed task can never succeed; retrying it is pointless.
		o.log.WarnWithContext(ctx, "Dropping invalid embedding task", err, taskFields(task))
		return OutcomeSkipped, nil
	}

	// Load. A vanished record is a skip: the document was deleted after
	// the task was enqueued, and its points were removed by the deletion
	// task that followed.
	loadStart := time.Now()
	doc, err := o.loader.Load(ctx, task.DocumentType, task.SourceID)
	o.observeStage(loadStart, "load")
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			o.log.InfoWithContext(ctx, "Document vanished before embedding, skipping", nil, taskFields(task))
			return OutcomeSkipped, nil
		}
		return OutcomeFailed, fmt.Errorf("load %s/%s: %w", task.DocumentType, task.SourceID, err)
	}

	// Format and chunk. Both are pure; an empty chunk set means there is
	// nothing to embed and the index is left untouched.
	var chunks []string
	for _, text := range doc.FormatTexts() {
		chunks = append(chunks, chunk.Split(text, task.DocumentType)...)
	}
	if o.observer != nil {
		o.observer.ObserveChunkCount(string(task.DocumentType), len(chunks))
	}
	if len(chunks) == 0 {
		o.log.InfoWithContext(ctx, "Document produced no chunks, skipping", nil, taskFields(task))
		return OutcomeSkipped, nil
	}

	// Embed before touching the index: an embedding failure must leave
	// the document's previous points intact.
	embedStart := time.Now()
	vectors, err := o.embedder.EmbedBatch(ctx, chunks)
	o.observeStage(embedStart, "embed")
	if err != nil {
		return OutcomeFailed, fmt.Errorf("embed %s/%s: %w", task.DocumentType, task.SourceID, err)
	}
	if len(vectors) != len(chunks) {
		return OutcomeFailed, fmt.Errorf("embed %s/%s: got %d vectors for %d chunks", task.DocumentType, task.SourceID, len(vectors), len(chunks))
	}

	// Invalidate then upsert. The delete is scoped to this document, so
	// the inconsistency window is a brief absence, never stale duplicates.
	indexStart := time.Now()
	err = o.index.DeleteByFilter(ctx, o.collection, vectorindex.Filter{
		vectorindex.FieldDocumentType: string(task.DocumentType),
		vectorindex.FieldSourceID:     task.SourceID,
	})
	if err != nil {
		o.observeStage(indexStart, "index")
		return OutcomeFailed, fmt.Errorf("invalidate %s/%s: %w", task.DocumentType, task.SourceID, err)
	}

	points := o.buildPoints(task, doc, chunks, vectors)
	err = o.index.UpsertPoints(ctx, o.collection, points)
	o.observeStage(indexStart, "index")
	if err != nil {
		// A partial upsert self-heals on retry: the next run re-deletes
		// and rebuilds the full set under the same deterministic ids.
		return OutcomeFailed, fmt.Errorf("upsert %s/%s: %w", task.DocumentType, task.SourceID, err)
	}

	o.log.InfoWithContext(ctx, "Document embedded", nil, map[string]interface{}{
		"document_type": string(task.DocumentType),
		"source_id":     task.SourceID,
		"chunks":        len(chunks),
	})
	return OutcomeCompleted, nil
}

func (o *Orchestrator) buildPoints(task EmbeddingTask, doc document.Document, chunks []string, vectors [][]float32) []vectorindex.Point {
	ownerID := doc.Owner()
	if ownerID == "" {
		ownerID = task.UserID
	}

	points := make([]vectorindex.Point, len(chunks))
	for i := range chunks {
		payload := map[string]any{
			vectorindex.FieldHouseholdID:  doc.Household(),
			vectorindex.FieldDocumentType: string(task.DocumentType),
			vectorindex.FieldSourceID:     task.SourceID,
			vectorindex.FieldChunkIndex:   i,
			vectorindex.FieldDate:         doc.EffectiveDate().UTC().Format("2006-01-02"),
		}
		if ownerID != "" {
			payload[vectorindex.FieldUserID] = ownerID
		}

		points[i] = vectorindex.Point{
			ID:      PointID(task.DocumentType, task.SourceID, i),
			Vector:  vectors[i],
			Payload: payload,
			Text:    chunks[i],
		}
	}
	return points
}

func (o *Orchestrator) observeStage(start time.Time, stage string) {
	if o.observer != nil {
		o.observer.RecordStageDuration(start, stage)
	}
}

func taskFields(task EmbeddingTask) map[string]interface{} {
	return map[string]interface{}{
		"document_type": string(task.DocumentType),
		"source_id":     task.SourceID,
		"household_id":  task.HouseholdID,
	}
}
