package store

import (
	"time"

	"github.com/hearthware/wellness-core/document"
)

// Gorm models mirror the web application's schema. Only the columns the
// formatter needs are mapped.

type healthLogModel struct {
	ID          string `gorm:"primaryKey"`
	HouseholdID string
	UserID      string
	LogDate     *time.Time
	Mood        string
	SleepHours  *float64
	EnergyLevel *int
	Note        string
	CreatedAt   time.Time
}

func (healthLogModel) TableName() string { return "health_logs" }

func (m healthLogModel) toDocument() document.Document {
	return document.HealthLog{
		ID:          m.ID,
		HouseholdID: m.HouseholdID,
		UserID:      m.UserID,
		LogDate:     m.LogDate,
		Mood:        m.Mood,
		SleepHours:  m.SleepHours,
		EnergyLevel: m.EnergyLevel,
		Note:        m.Note,
		CreatedAt:   m.CreatedAt,
	}
}

type recipeModel struct {
	ID          string `gorm:"primaryKey"`
	HouseholdID string
	Name        string
	Description string
	Servings    int
	Tags        []recipeTagModel        `gorm:"foreignKey:RecipeID"`
	Ingredients []recipeIngredientModel `gorm:"foreignKey:RecipeID"`
	Steps       []recipeStepModel       `gorm:"foreignKey:RecipeID"`
	CreatedAt   time.Time
}

func (recipeModel) TableName() string { return "recipes" }

type recipeIngredientModel struct {
	ID       string `gorm:"primaryKey"`
	RecipeID string
	Name     string
	Quantity float64
	Unit     string
	Position int
}

func (recipeIngredientModel) TableName() string { return "recipe_ingredients" }

type recipeStepModel struct {
	ID       string `gorm:"primaryKey"`
	RecipeID string
	Text     string
	Position int
}

func (recipeStepModel) TableName() string { return "recipe_steps" }

type recipeTagModel struct {
	ID       string `gorm:"primaryKey"`
	RecipeID string
	Name     string
}

func (recipeTagModel) TableName() string { return "recipe_tags" }

func (m recipeModel) toDocument() document.Document {
	doc := document.Recipe{
		ID:          m.ID,
		HouseholdID: m.HouseholdID,
		Name:        m.Name,
		Description: m.Description,
		Servings:    m.Servings,
		CreatedAt:   m.CreatedAt,
	}
	for _, ing := range m.Ingredients {
		doc.Ingredients = append(doc.Ingredients, document.Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	for _, step := range m.Steps {
		doc.Instructions = append(doc.Instructions, step.Text)
	}
	for _, tag := range m.Tags {
		doc.Tags = append(doc.Tags, tag.Name)
	}
	return doc
}

type pantryItemModel struct {
	ID          string `gorm:"primaryKey"`
	HouseholdID string
	Name        string
	Category    string
	Quantity    float64
	Unit        string
	ExpiresAt   *time.Time
	CreatedAt   time.Time
}

func (pantryItemModel) TableName() string { return "pantry_items" }

func (m pantryItemModel) toDocument() document.Document {
	return document.PantryItem{
		ID:          m.ID,
		HouseholdID: m.HouseholdID,
		Name:        m.Name,
		Category:    m.Category,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		ExpiresAt:   m.ExpiresAt,
		CreatedAt:   m.CreatedAt,
	}
}

type goalModel struct {
	ID          string `gorm:"primaryKey"`
	HouseholdID string
	UserID      string
	Title       string
	Description string
	Category    string
	Status      string
	TargetDate  *time.Time
	CreatedAt   time.Time
}

func (goalModel) TableName() string { return "goals" }

func (m goalModel) toDocument() document.Document {
	return document.Goal{
		ID:          m.ID,
		HouseholdID: m.HouseholdID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Status:      m.Status,
		TargetDate:  m.TargetDate,
		CreatedAt:   m.CreatedAt,
	}
}
