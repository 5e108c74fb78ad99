package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hearthware/wellness-core/document"
	"github.com/hearthware/wellness-core/logger"
)

// Backfiller re-enqueues stored documents for embedding. Used after
// collection rebuilds and embedding model changes.
type Backfiller struct {
	loader   Loader
	enqueuer *Enqueuer
	log      *logger.Logger
}

func NewBackfiller(loader Loader, enqueuer *Enqueuer, log *logger.Logger) *Backfiller {
	return &Backfiller{loader: loader, enqueuer: enqueuer, log: log}
}

// BulkEmbedAll enqueues one task per stored document across all document
// types. An empty householdID backfills the whole corpus; a non-empty one
// scopes the run to that household. Types are listed concurrently; a failure
// in any type aborts the remaining work and is returned to the caller.
func (b *Backfiller) BulkEmbedAll(ctx context.Context, householdID string) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	counts := make([]int, len(document.Types()))

	for i, t := range document.Types() {
		g.Go(func() error {
			refs, err := b.loader.ListRefs(ctx, t, householdID)
			if err != nil {
				return fmt.Errorf("list %s documents: %w", t, err)
			}

			for _, ref := range refs {
				task := EmbeddingTask{
					DocumentType: ref.Type,
					SourceID:     ref.SourceID,
					HouseholdID:  ref.HouseholdID,
					UserID:       ref.UserID,
				}
				if err := b.enqueuer.EnqueueEmbedding(ctx, task); err != nil {
					return err
				}
			}
			counts[i] = len(refs)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	b.log.InfoWithContext(ctx, "Backfill enqueued", nil, map[string]interface{}{
		"household_id": householdID,
		"tasks":        total,
	})
	return total, nil
}
