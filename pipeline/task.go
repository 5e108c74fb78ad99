package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/hearthware/wellness-core/document"
)

// EmbeddingTask is the immutable unit of work flowing through the queue.
// One task re-embeds one document; delivery is at-least-once, so processing
// must be idempotent.
type EmbeddingTask struct {
	DocumentType document.Type `json:"document_type"`
	SourceID     string        `json:"source_id"`
	HouseholdID  string        `json:"household_id"`
	UserID       string        `json:"user_id,omitempty"`
}

// Validate rejects tasks that cannot identify a document.
func (t EmbeddingTask) Validate() error {
	if _, err := document.ParseType(string(t.DocumentType)); err != nil {
		return err
	}
	if t.SourceID == "" {
		return fmt.Errorf("pipeline: task missing source_id")
	}
	if t.HouseholdID == "" {
		return fmt.Errorf("pipeline: task missing household_id")
	}
	return nil
}

// Encode serializes the task for the queue.
func (t EmbeddingTask) Encode() ([]byte, error) {
	return json.Marshal(t)
}

// DecodeTask parses and validates a queued task payload.
func DecodeTask(data []byte) (EmbeddingTask, error) {
	var t EmbeddingTask
	if err := json.Unmarshal(data, &t); err != nil {
		return EmbeddingTask{}, fmt.Errorf("pipeline: decode task: %w", err)
	}
	if err := t.Validate(); err != nil {
		return EmbeddingTask{}, err
	}
	return t, nil
}

// Outcome is the terminal state of one task execution.
type Outcome string

const (
	// OutcomeCompleted means the index now holds the document's current chunks.
	OutcomeCompleted Outcome = "completed"

	// OutcomeSkipped means there was nothing to embed: the record vanished
	// or produced no text. Never retried.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeFailed means a provider or index call failed. The queue's
	// redelivery policy decides whether to retry.
	OutcomeFailed Outcome = "failed"
)
