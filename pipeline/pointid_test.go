package pipeline

import (
	"testing"

	"github.com/google/uuid"

	"github.com/hearthware/wellness-core/document"
)

func TestPointIDDeterministic(t *testing.T) {
	a := PointID(document.TypeRecipe, "42", 0)
	b := PointID(document.TypeRecipe, "42", 0)
	if a != b {
		t.Fatalf("same inputs gave %q and %q", a, b)
	}
}

func TestPointIDDistinguishesInputs(t *testing.T) {
	ids := map[string]string{
		"chunk":  PointID(document.TypeRecipe, "42", 1),
		"source": PointID(document.TypeRecipe, "43", 0),
		"type":   PointID(document.TypeGoal, "42", 0),
	}
	base := PointID(document.TypeRecipe, "42", 0)
	for name, id := range ids {
		if id == base {
			t.Errorf("varying %s did not change the id", name)
		}
	}
}

func TestPointIDIsValidUUID(t *testing.T) {
	id := PointID(document.TypeHealthLog, "log-9", 3)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("PointID %q is not a uuid: %v", id, err)
	}
}

func TestPointIDSeparatorCannotCollide(t *testing.T) {
	// "a:b" chunk 1 and "a" chunk derived from a colliding concatenation
	// must stay distinct because the type prefix is fixed per call.
	a := PointID(document.TypeGoal, "a:b", 1)
	b := PointID(document.TypeGoal, "a", 1)
	if a == b {
		t.Fatal("distinct source ids collided")
	}
}
