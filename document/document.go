package document

import (
	"fmt"
	"strings"
	"time"
)

// Document is the capability interface every embeddable record variant
// implements. FormatTexts must be a pure function of the receiver so that
// re-running the pipeline over unchanged data reproduces byte-identical
// texts, and with them the same chunk boundaries and point identities.
type Document interface {
	DocumentType() Type
	SourceID() string
	Household() string

	// Owner returns the user id the record belongs to, or "" for
	// household-level records like recipes and pantry items.
	Owner() string

	// EffectiveDate is the record's own date when it has one, otherwise
	// its creation timestamp.
	EffectiveDate() time.Time

	// FormatTexts renders the record into one or more canonical texts,
	// one per logical section.
	FormatTexts() []string
}

const dateLayout = "2006-01-02"

// HealthLog is a single day's wellness entry for one user.
type HealthLog struct {
	ID          string
	HouseholdID string
	UserID      string
	LogDate     *time.Time
	Mood        string
	SleepHours  *float64
	EnergyLevel *int
	Note        string
	CreatedAt   time.Time
}

func (h HealthLog) DocumentType() Type { return TypeHealthLog }
func (h HealthLog) SourceID() string   { return h.ID }
func (h HealthLog) Household() string  { return h.HouseholdID }
func (h HealthLog) Owner() string      { return h.UserID }

func (h HealthLog) EffectiveDate() time.Time {
	if h.LogDate != nil {
		return *h.LogDate
	}
	return h.CreatedAt
}

func (h HealthLog) FormatTexts() []string {
	var b strings.Builder
	fmt.Fprintf(&b, "Health log for %s.", h.EffectiveDate().Format(dateLayout))
	if h.Mood != "" {
		fmt.Fprintf(&b, " Mood: %s.", h.Mood)
	}
	if h.SleepHours != nil {
		fmt.Fprintf(&b, " Sleep: %.1f hours.", *h.SleepHours)
	}
	if h.EnergyLevel != nil {
		fmt.Fprintf(&b, " Energy level: %d out of 5.", *h.EnergyLevel)
	}
	if note := strings.TrimSpace(h.Note); note != "" {
		fmt.Fprintf(&b, " Note: %s", note)
	}
	return []string{b.String()}
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name     string
	Quantity float64
	Unit     string
}

func (i Ingredient) String() string {
	if i.Quantity == 0 {
		return i.Name
	}
	if i.Unit == "" {
		return fmt.Sprintf("%g %s", i.Quantity, i.Name)
	}
	return fmt.Sprintf("%g %s %s", i.Quantity, i.Unit, i.Name)
}

// Recipe is a household-level recipe with its relations loaded.
type Recipe struct {
	ID           string
	HouseholdID  string
	Name         string
	Description  string
	Servings     int
	Ingredients  []Ingredient
	Instructions []string
	Tags         []string
	CreatedAt    time.Time
}

func (r Recipe) DocumentType() Type { return TypeRecipe }
func (r Recipe) SourceID() string   { return r.ID }
func (r Recipe) Household() string  { return r.HouseholdID }
func (r Recipe) Owner() string      { return "" }

func (r Recipe) EffectiveDate() time.Time { return r.CreatedAt }

// FormatTexts renders a recipe as up to three sections: overview,
// ingredients, instructions. Empty sections are omitted so a bare-bones
// recipe still embeds cleanly.
func (r Recipe) FormatTexts() []string {
	var texts []string

	var overview strings.Builder
	fmt.Fprintf(&overview, "Recipe: %s.", r.Name)
	if r.Servings > 0 {
		fmt.Fprintf(&overview, " Serves %d.", r.Servings)
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(&overview, " Tags: %s.", strings.Join(r.Tags, ", "))
	}
	if desc := strings.TrimSpace(r.Description); desc != "" {
		fmt.Fprintf(&overview, " %s", desc)
	}
	texts = append(texts, overview.String())

	if len(r.Ingredients) > 0 {
		lines := make([]string, len(r.Ingredients))
		for i, ing := range r.Ingredients {
			lines[i] = ing.String()
		}
		texts = append(texts, fmt.Sprintf("Ingredients for %s: %s.", r.Name, strings.Join(lines, "; ")))
	}

	if len(r.Instructions) > 0 {
		var steps strings.Builder
		fmt.Fprintf(&steps, "Instructions for %s.", r.Name)
		for i, step := range r.Instructions {
			fmt.Fprintf(&steps, " Step %d: %s", i+1, strings.TrimSpace(step))
		}
		texts = append(texts, steps.String())
	}

	return texts
}

// PantryItem is one stocked item in the household pantry.
type PantryItem struct {
	ID          string
	HouseholdID string
	Name        string
	Category    string
	Quantity    float64
	Unit        string
	ExpiresAt   *time.Time
	CreatedAt   time.Time
}

func (p PantryItem) DocumentType() Type { return TypePantryItem }
func (p PantryItem) SourceID() string   { return p.ID }
func (p PantryItem) Household() string  { return p.HouseholdID }
func (p PantryItem) Owner() string      { return "" }

func (p PantryItem) EffectiveDate() time.Time { return p.CreatedAt }

func (p PantryItem) FormatTexts() []string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pantry item: %s.", p.Name)
	if p.Category != "" {
		fmt.Fprintf(&b, " Category: %s.", p.Category)
	}
	if p.Quantity > 0 {
		if p.Unit != "" {
			fmt.Fprintf(&b, " Quantity: %g %s.", p.Quantity, p.Unit)
		} else {
			fmt.Fprintf(&b, " Quantity: %g.", p.Quantity)
		}
	}
	if p.ExpiresAt != nil {
		fmt.Fprintf(&b, " Expires on %s.", p.ExpiresAt.Format(dateLayout))
	}
	return []string{b.String()}
}

// Goal is a personal wellness goal for one user.
type Goal struct {
	ID          string
	HouseholdID string
	UserID      string
	Title       string
	Description string
	Category    string
	Status      string
	TargetDate  *time.Time
	CreatedAt   time.Time
}

func (g Goal) DocumentType() Type { return TypeGoal }
func (g Goal) SourceID() string   { return g.ID }
func (g Goal) Household() string  { return g.HouseholdID }
func (g Goal) Owner() string      { return g.UserID }

func (g Goal) EffectiveDate() time.Time {
	if g.TargetDate != nil {
		return *g.TargetDate
	}
	return g.CreatedAt
}

func (g Goal) FormatTexts() []string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s.", g.Title)
	if g.Category != "" {
		fmt.Fprintf(&b, " Category: %s.", g.Category)
	}
	if g.Status != "" {
		fmt.Fprintf(&b, " Status: %s.", g.Status)
	}
	if g.TargetDate != nil {
		fmt.Fprintf(&b, " Target date: %s.", g.TargetDate.Format(dateLayout))
	}
	if desc := strings.TrimSpace(g.Description); desc != "" {
		fmt.Fprintf(&b, " %s", desc)
	}
	return []string{b.String()}
}
