package document

import "fmt"

// Type identifies which kind of domain record a document represents.
type Type string

const (
	TypeHealthLog  Type = "health_log"
	TypeRecipe     Type = "recipe"
	TypePantryItem Type = "pantry_item"
	TypeGoal       Type = "goal"
)

// Types lists every embeddable document type, in backfill iteration order.
func Types() []Type {
	return []Type{TypeHealthLog, TypeRecipe, TypePantryItem, TypeGoal}
}

// ParseType converts a wire-level string into a Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeHealthLog, TypeRecipe, TypePantryItem, TypeGoal:
		return Type(s), nil
	default:
		return "", fmt.Errorf("document: unknown type %q", s)
	}
}

func (t Type) String() string {
	return string(t)
}

// Ref identifies one embeddable record without loading it. Backfill
// enumerates Refs and enqueues one task per Ref.
type Ref struct {
	Type        Type
	SourceID    string
	HouseholdID string
	UserID      string
}
