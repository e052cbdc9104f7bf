package app

import (
	"context"
	"math"
	"strings"
	"time"

	"fitcore/internal/domain"
)

// IntakeService encapsulates the food catalogue and meal logging use cases.
type IntakeService struct {
	repo domain.IntakeRepository
}

// NewIntakeService creates an IntakeService backed by the given repository.
func NewIntakeService(repo domain.IntakeRepository) *IntakeService {
	return &IntakeService{repo: repo}
}

// AddFood validates and stores a catalogue entry.
func (s *IntakeService) AddFood(ctx context.Context, f domain.FoodItem) (*domain.FoodItem, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Brand = strings.TrimSpace(f.Brand)
	if f.Name == "" {
		return nil, validationErrorf("name is required")
	}
	m := f.Per100
	for _, v := range []float64{m.Carbohydrates, m.Proteins, m.Fats, m.Fibers, m.Sodium, m.Calories} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, validationErrorf("macros must be finite and >= 0")
		}
	}
	id, err := s.repo.AddFood(ctx, f)
	if err != nil {
		return nil, err
	}
	f.ID = id
	return &f, nil
}

func (s *IntakeService) ListFoods(ctx context.Context, limit int) ([]domain.FoodItem, error) {
	return s.repo.ListFoods(ctx, capLimit(limit))
}

// LogMeal stores one meal with all of its lines.
func (s *IntakeService) LogMeal(ctx context.Context, userID int64, mealNumber int, lines []domain.IngestionLine) (*domain.IngestionEvent, error) {
	if mealNumber < 1 {
		return nil, validationErrorf("mealNumber must be >= 1")
	}
	if len(lines) == 0 {
		return nil, validationErrorf("at least one line is required")
	}
	for _, l := range lines {
		if l.FoodID <= 0 {
			return nil, validationErrorf("foodId is required")
		}
		if l.Quantity <= 0 || math.IsInf(l.Quantity, 0) {
			return nil, validationErrorf("quantity must be > 0")
		}
	}

	ev := domain.IngestionEvent{
		UserID:     userID,
		MealNumber: mealNumber,
		Lines:      lines,
		CreatedAt:  time.Now(),
	}
	id, err := s.repo.AddIngestion(ctx, ev)
	if err != nil {
		return nil, err
	}
	ev.ID = id
	for i := range ev.Lines {
		ev.Lines[i].EventID = id
	}
	return &ev, nil
}

// Today returns today's joined intake lines and their totals.
func (s *IntakeService) Today(ctx context.Context, userID int64) ([]domain.IntakeLine, domain.Macros, string, error) {
	today := time.Now().In(time.Local).Format("2006-01-02")
	lines, err := s.repo.IntakeLinesForLocalDay(ctx, userID, today)
	if err != nil {
		return nil, domain.Macros{}, today, err
	}
	return lines, domain.AggregateIntake(lines), today, nil
}

// UndoLast deletes the user's most recent meal and its lines.
func (s *IntakeService) UndoLast(ctx context.Context, userID int64) (bool, error) {
	return s.repo.DeleteLatestIngestion(ctx, userID)
}
