package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hearthware/wellness-core/document"
)

// ErrNotFound reports that the requested record no longer exists. The
// pipeline treats this as a skip, not a failure, since the record may have
// been deleted between enqueue and processing.
var ErrNotFound = errors.New("store: document not found")

// Load fetches one domain record by type and id, with the relations its
// formatter needs preloaded.
func (s *Store) Load(ctx context.Context, t document.Type, id string) (document.Document, error) {
	switch t {
	case document.TypeHealthLog:
		var m healthLogModel
		if err := s.first(ctx, &m, t, id); err != nil {
			return nil, err
		}
		return m.toDocument(), nil

	case document.TypeRecipe:
		var m recipeModel
		err := s.db.WithContext(ctx).
			Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
			Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
			Preload("Tags").
			First(&m, "id = ?", id).Error
		if err != nil {
			return nil, s.translate(err, t, id)
		}
		return m.toDocument(), nil

	case document.TypePantryItem:
		var m pantryItemModel
		if err := s.first(ctx, &m, t, id); err != nil {
			return nil, err
		}
		return m.toDocument(), nil

	case document.TypeGoal:
		var m goalModel
		if err := s.first(ctx, &m, t, id); err != nil {
			return nil, err
		}
		return m.toDocument(), nil

	default:
		return nil, fmt.Errorf("store: unsupported document type %q", t)
	}
}

func (s *Store) first(ctx context.Context, dest interface{}, t document.Type, id string) error {
	err := s.db.WithContext(ctx).First(dest, "id = ?", id).Error
	if err != nil {
		return s.translate(err, t, id)
	}
	return nil
}

func (s *Store) translate(err error, t document.Type, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, t, id)
	}
	return fmt.Errorf("store: load %s/%s: %w", t, id, err)
}

// ListRefs enumerates all records of one type for backfill, optionally
// scoped to a household. Only identity columns are selected.
func (s *Store) ListRefs(ctx context.Context, t document.Type, householdID string) ([]document.Ref, error) {
	type row struct {
		ID          string
		HouseholdID string
		UserID      string
	}

	var table string
	hasUser := false
	switch t {
	case document.TypeHealthLog:
		table, hasUser = "health_logs", true
	case document.TypeRecipe:
		table = "recipes"
	case document.TypePantryItem:
		table = "pantry_items"
	case document.TypeGoal:
		table, hasUser = "goals", true
	default:
		return nil, fmt.Errorf("store: unsupported document type %q", t)
	}

	columns := "id, household_id"
	if hasUser {
		columns += ", user_id"
	}

	q := s.db.WithContext(ctx).Table(table).Select(columns).Order("id")
	if householdID != "" {
		q = q.Where("household_id = ?", householdID)
	}

	var rows []row
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("store: list %s: %w", t, err)
	}

	refs := make([]document.Ref, len(rows))
	for i, r := range rows {
		refs[i] = document.Ref{
			Type:        t,
			SourceID:    r.ID,
			HouseholdID: r.HouseholdID,
			UserID:      r.UserID,
		}
	}
	return refs, nil
}
