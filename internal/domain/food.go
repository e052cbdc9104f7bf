package domain

import (
	"context"
	"time"
)

// Macros holds the six tracked nutrient values.
type Macros struct {
	Carbohydrates float64 `json:"carbohydrates"`
	Proteins      float64 `json:"proteins"`
	Fats          float64 `json:"fats"`
	Fibers        float64 `json:"fibers"`
	Sodium        float64 `json:"sodium"`
	Calories      float64 `json:"calories"`
}

// Scale multiplies every field by f.
func (m Macros) Scale(f float64) Macros {
	return Macros{
		Carbohydrates: m.Carbohydrates * f,
		Proteins:      m.Proteins * f,
		Fats:          m.Fats * f,
		Fibers:        m.Fibers * f,
		Sodium:        m.Sodium * f,
		Calories:      m.Calories * f,
	}
}

// Add returns the field-wise sum of m and o.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Carbohydrates: m.Carbohydrates + o.Carbohydrates,
		Proteins:      m.Proteins + o.Proteins,
		Fats:          m.Fats + o.Fats,
		Fibers:        m.Fibers + o.Fibers,
		Sodium:        m.Sodium + o.Sodium,
		Calories:      m.Calories + o.Calories,
	}
}

// FoodItem is a shared catalogue entry; Per100 is the composition per 100
// units of the food.
type FoodItem struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Brand  string `json:"brand"`
	Per100 Macros `json:"per100"`
}

// IngestionLine is one food eaten as part of an IngestionEvent.
type IngestionLine struct {
	ID       int64   `json:"id"`
	EventID  int64   `json:"eventId"`
	FoodID   int64   `json:"foodId"`
	Quantity float64 `json:"quantity"`
}

// IngestionEvent is one meal logged by a user.
type IngestionEvent struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"userId"`
	MealNumber int             `json:"mealNumber"`
	Lines      []IngestionLine `json:"lines"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// IntakeLine is an ingestion line already joined with its food's macros.
type IntakeLine struct {
	EventID    int64   `json:"eventId"`
	MealNumber int     `json:"mealNumber"`
	FoodID     int64   `json:"foodId"`
	FoodName   string  `json:"foodName"`
	Quantity   float64 `json:"quantity"`
	Per100     Macros  `json:"per100"`
}

// IntakeRepository is the port for the food catalogue and ingestion log.
type IntakeRepository interface {
	AddFood(ctx context.Context, f FoodItem) (int64, error)
	ListFoods(ctx context.Context, limit int) ([]FoodItem, error)
	// AddIngestion stores the event and all of its lines atomically.
	AddIngestion(ctx context.Context, ev IngestionEvent) (int64, error)
	DeleteLatestIngestion(ctx context.Context, userID int64) (bool, error)
	// IntakeLinesForLocalDay returns every line logged by the user on the
	// local calendar day, joined with the referenced food's macros.
	IntakeLinesForLocalDay(ctx context.Context, userID int64, localDay string) ([]IntakeLine, error)
}
