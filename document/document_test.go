package document

import (
	"strings"
	"testing"
	"time"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
func ptrTime(v time.Time) *time.Time {
	return &v
}

func TestHealthLogFormat_Deterministic(t *testing.T) {
	logDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	log := HealthLog{
		ID:          "log_1",
		HouseholdID: "hh_1",
		UserID:      "user_1",
		LogDate:     ptrTime(logDate),
		Mood:        "good",
		SleepHours:  ptrFloat(7.5),
		EnergyLevel: ptrInt(4),
		Note:        "Morning run, felt strong",
		CreatedAt:   time.Now(),
	}

	first := log.FormatTexts()
	second := log.FormatTexts()

	if len(first) != 1 {
		t.Fatalf("expected 1 text, got %d", len(first))
	}
	if first[0] != second[0] {
		t.Error("formatting is not deterministic")
	}

	want := "Health log for 2026-08-30. Mood: good. Sleep: 7.5 hours. Energy level: 4 out of 5. Note: Morning run, felt strong"
	if first[0] != want {
		t.Errorf("unexpected text:\n got: %q\nwant: %q", first[0], want)
	}
}

func TestHealthLogDateFallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	log := HealthLog{ID: "log_2", CreatedAt: created}

	if !log.EffectiveDate().Equal(created) {
		t.Errorf("expected fallback to created_at, got %v", log.EffectiveDate())
	}
	if !strings.Contains(log.FormatTexts()[0], "2026-01-15") {
		t.Errorf("expected created_at date in text, got %q", log.FormatTexts()[0])
	}
}

func TestRecipeFormat_Sections(t *testing.T) {
	recipe := Recipe{
		ID:          "recipe_1",
		HouseholdID: "hh_1",
		Name:        "Lentil Soup",
		Description: "A warming weeknight soup.",
		Servings:    4,
		Ingredients: []Ingredient{
			{Name: "red lentils", Quantity: 200, Unit: "g"},
			{Name: "onion", Quantity: 1},
			{Name: "salt"},
		},
		Instructions: []string{"Dice the onion.", "Simmer everything for 25 minutes."},
		Tags:         []string{"vegetarian", "cheap"},
	}

	texts := recipe.FormatTexts()
	if len(texts) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(texts))
	}

	if !strings.HasPrefix(texts[0], "Recipe: Lentil Soup. Serves 4. Tags: vegetarian, cheap.") {
		t.Errorf("unexpected overview: %q", texts[0])
	}
	if texts[1] != "Ingredients for Lentil Soup: 200 g red lentils; 1 onion; salt." {
		t.Errorf("unexpected ingredients: %q", texts[1])
	}
	if !strings.Contains(texts[2], "Step 1: Dice the onion.") || !strings.Contains(texts[2], "Step 2: Simmer everything for 25 minutes.") {
		t.Errorf("unexpected instructions: %q", texts[2])
	}
}

func TestRecipeFormat_OmitsEmptySections(t *testing.T) {
	recipe := Recipe{ID: "recipe_2", Name: "Toast"}

	texts := recipe.FormatTexts()
	if len(texts) != 1 {
		t.Fatalf("expected 1 section for bare recipe, got %d", len(texts))
	}
}

func TestPantryItemFormat(t *testing.T) {
	expires := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	item := PantryItem{
		ID:        "item_1",
		Name:      "Rolled oats",
		Category:  "grains",
		Quantity:  1.5,
		Unit:      "kg",
		ExpiresAt: ptrTime(expires),
	}

	texts := item.FormatTexts()
	want := "Pantry item: Rolled oats. Category: grains. Quantity: 1.5 kg. Expires on 2026-09-12."
	if texts[0] != want {
		t.Errorf("unexpected text:\n got: %q\nwant: %q", texts[0], want)
	}
}

func TestGoalFormat(t *testing.T) {
	target := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	goal := Goal{
		ID:          "goal_1",
		UserID:      "user_1",
		Title:       "Run a half marathon",
		Category:    "fitness",
		Status:      "active",
		TargetDate:  ptrTime(target),
		Description: "Three runs per week, building distance slowly.",
	}

	text := goal.FormatTexts()[0]
	if !strings.HasPrefix(text, "Goal: Run a half marathon. Category: fitness. Status: active. Target date: 2026-12-31.") {
		t.Errorf("unexpected text: %q", text)
	}
	if !goal.EffectiveDate().Equal(target) {
		t.Errorf("expected target date as effective date, got %v", goal.EffectiveDate())
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		parsed, err := ParseType(string(typ))
		if err != nil {
			t.Errorf("ParseType(%q): %v", typ, err)
		}
		if parsed != typ {
			t.Errorf("ParseType(%q) = %q", typ, parsed)
		}
	}

	if _, err := ParseType("habit"); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestOwnerScoping(t *testing.T) {
	if (Recipe{}).Owner() != "" {
		t.Error("recipes are household-level, owner must be empty")
	}
	if (PantryItem{}).Owner() != "" {
		t.Error("pantry items are household-level, owner must be empty")
	}
	if (HealthLog{UserID: "u"}).Owner() != "u" {
		t.Error("health logs carry their user id")
	}
	if (Goal{UserID: "u"}).Owner() != "u" {
		t.Error("goals carry their user id")
	}
}
