package pipeline

import (
	"context"
	"sync"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hearthware/wellness-core/document"
	"github.com/hearthware/wellness-core/rabbit"
)

// fakeQueue records published task payloads.
type fakeQueue struct {
	mu        sync.Mutex
	published [][]byte
}

func (q *fakeQueue) Publish(_ context.Context, msg []byte, _ ...map[string]interface{}) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.published = append(q.published, msg)
	return nil
}

func (q *fakeQueue) Consume(context.Context, *sync.WaitGroup) <-chan rabbit.Message {
	ch := make(chan rabbit.Message)
	close(ch)
	return ch
}

func (q *fakeQueue) ConsumeDLQ(context.Context, *sync.WaitGroup) <-chan rabbit.Message {
	ch := make(chan rabbit.Message)
	close(ch)
	return ch
}

func (q *fakeQueue) RetryConnection(rabbit.Config) {}
func (q *fakeQueue) GracefulShutdown()             {}

func (q *fakeQueue) GetChannel() *amqp.Channel { return nil }

func TestBulkEmbedAllEnqueuesEveryDocument(t *testing.T) {
	loader := &fakeLoader{refs: map[document.Type][]document.Ref{
		document.TypeHealthLog: {
			{Type: document.TypeHealthLog, SourceID: "log-1", HouseholdID: "house-1", UserID: "user-1"},
			{Type: document.TypeHealthLog, SourceID: "log-2", HouseholdID: "house-1", UserID: "user-2"},
		},
		document.TypeRecipe: {
			{Type: document.TypeRecipe, SourceID: "r-1", HouseholdID: "house-1"},
		},
		document.TypeGoal: {
			{Type: document.TypeGoal, SourceID: "g-1", HouseholdID: "house-2", UserID: "other"},
		},
	}}

	queue := &fakeQueue{}
	b := NewBackfiller(loader, NewEnqueuer(queue, nil, testLogger()), testLogger())

	total, err := b.BulkEmbedAll(context.Background(), "house-1")
	if err != nil {
		t.Fatalf("BulkEmbedAll: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if len(queue.published) != 3 {
		t.Fatalf("published %d messages, want 3", len(queue.published))
	}

	sources := map[string]bool{}
	for _, body := range queue.published {
		task, err := DecodeTask(body)
		if err != nil {
			t.Fatalf("published payload undecodable: %v", err)
		}
		if task.HouseholdID != "house-1" {
			t.Errorf("task for foreign household: %+v", task)
		}
		sources[task.SourceID] = true
	}
	for _, want := range []string{"log-1", "log-2", "r-1"} {
		if !sources[want] {
			t.Errorf("no task published for %s", want)
		}
	}
}

func TestBulkEmbedAllUnscopedCoversEveryHousehold(t *testing.T) {
	loader := &fakeLoader{refs: map[document.Type][]document.Ref{
		document.TypeHealthLog: {
			{Type: document.TypeHealthLog, SourceID: "log-1", HouseholdID: "house-1", UserID: "user-1"},
		},
		document.TypeGoal: {
			{Type: document.TypeGoal, SourceID: "g-1", HouseholdID: "house-2", UserID: "other"},
		},
	}}

	queue := &fakeQueue{}
	b := NewBackfiller(loader, NewEnqueuer(queue, nil, testLogger()), testLogger())

	total, err := b.BulkEmbedAll(context.Background(), "")
	if err != nil {
		t.Fatalf("BulkEmbedAll: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}

	households := map[string]bool{}
	for _, body := range queue.published {
		task, err := DecodeTask(body)
		if err != nil {
			t.Fatalf("published payload undecodable: %v", err)
		}
		households[task.HouseholdID] = true
	}
	if !households["house-1"] || !households["house-2"] {
		t.Errorf("unscoped backfill missed a household: %v", households)
	}
}
