package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitcore/internal/domain"
)

func TestMeasurementRepository(t *testing.T) {
	db := New()
	ctx := context.Background()
	userID := int64(1)

	now := time.Now()
	_, err := db.AddMeasurement(ctx, domain.AnthropometricRecord{UserID: userID, Weight: 82, CreatedAt: now.Add(-time.Hour)})
	if err != nil {
		t.Fatalf("AddMeasurement: %v", err)
	}
	id, _ := db.AddMeasurement(ctx, domain.AnthropometricRecord{UserID: userID, Weight: 80, CreatedAt: now})

	latest, err := db.LatestMeasurement(ctx, userID)
	if err != nil {
		t.Fatalf("LatestMeasurement: %v", err)
	}
	if latest == nil || latest.ID != id || latest.Weight != 80 {
		t.Fatalf("unexpected latest: %+v", latest)
	}
	if latest.Day != now.Format("2006-01-02") {
		t.Errorf("expected Day to be populated, got %q", latest.Day)
	}

	recent, _ := db.ListRecentMeasurements(ctx, userID, 1)
	if len(recent) != 1 {
		t.Errorf("expected limit to apply, got %d", len(recent))
	}

	// Other user sees nothing
	other, err := db.LatestMeasurement(ctx, 999)
	if err != nil || other != nil {
		t.Errorf("expected nil for other user, got %+v, %v", other, err)
	}
}

func TestIntakeRepository(t *testing.T) {
	db := New()
	ctx := context.Background()
	userID := int64(1)

	oats, _ := db.AddFood(ctx, domain.FoodItem{Name: "Oats", Per100: domain.Macros{Calories: 389, Proteins: 17}})
	milk, _ := db.AddFood(ctx, domain.FoodItem{Name: "Milk", Per100: domain.Macros{Calories: 42, Proteins: 3.4}})

	foods, err := db.ListFoods(ctx, 10)
	if err != nil {
		t.Fatalf("ListFoods: %v", err)
	}
	if len(foods) != 2 || foods[0].Name != "Milk" {
		t.Errorf("expected foods ordered by name, got %+v", foods)
	}

	now := time.Now()
	_, err = db.AddIngestion(ctx, domain.IngestionEvent{
		UserID:     userID,
		MealNumber: 1,
		CreatedAt:  now,
		Lines: []domain.IngestionLine{
			{FoodID: oats, Quantity: 50},
			{FoodID: milk, Quantity: 200},
		},
	})
	if err != nil {
		t.Fatalf("AddIngestion: %v", err)
	}

	// Unknown food rejects the whole event
	_, err = db.AddIngestion(ctx, domain.IngestionEvent{
		UserID:    userID,
		CreatedAt: now.Add(time.Minute),
		Lines: []domain.IngestionLine{
			{FoodID: oats, Quantity: 10},
			{FoodID: 999, Quantity: 10},
		},
	})
	if !errors.Is(err, domain.ErrFoodNotFound) {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}

	lines, err := db.IntakeLinesForLocalDay(ctx, userID, now.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("IntakeLinesForLocalDay: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].FoodName != "Oats" || lines[0].Per100.Calories != 389 {
		t.Errorf("expected joined food data, got %+v", lines[0])
	}

	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	if lines, _ := db.IntakeLinesForLocalDay(ctx, userID, yesterday); len(lines) != 0 {
		t.Errorf("expected no lines yesterday, got %d", len(lines))
	}

	ok, err := db.DeleteLatestIngestion(ctx, userID)
	if err != nil || !ok {
		t.Fatalf("DeleteLatestIngestion: %v, %v", ok, err)
	}
	ok, _ = db.DeleteLatestIngestion(ctx, userID)
	if ok {
		t.Error("expected nothing left to delete")
	}
}

func TestProfileAndSnapshotRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.Create(ctx, "ana@example.com", "Ana", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := db.Create(ctx, "ana@example.com", "Ana", ""); err == nil {
		t.Error("expected duplicate email to fail")
	}

	p, _ := db.GetProfile(ctx, u.ID)
	if p == nil || p.Email != "ana@example.com" || p.BirthDate != nil {
		t.Fatalf("unexpected profile: %+v", p)
	}

	birth := time.Date(1994, 6, 15, 0, 0, 0, 0, time.Local)
	p.Sex = domain.SexFemale
	p.BirthDate = &birth
	if err := db.UpdateProfile(ctx, *p); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	p, _ = db.GetProfile(ctx, u.ID)
	if p.Sex != domain.SexFemale || p.BirthDate == nil || !p.BirthDate.Equal(birth) {
		t.Errorf("profile not updated: %+v", p)
	}
	if err := db.UpdateProfile(ctx, domain.UserProfile{UserID: 42}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	ids, _ := db.ListUserIDs(ctx)
	if len(ids) != 1 || ids[0] != u.ID {
		t.Errorf("unexpected user ids: %v", ids)
	}

	now := time.Now()
	first, _ := db.CreateSnapshot(ctx, domain.NutritionSnapshot{UserID: u.ID, CreatedAt: now})
	second, _ := db.CreateSnapshot(ctx, domain.NutritionSnapshot{UserID: u.ID, CreatedAt: now})
	snaps, err := db.ListRecentSnapshots(ctx, u.ID, 10)
	if err != nil {
		t.Fatalf("ListRecentSnapshots: %v", err)
	}
	if len(snaps) != 2 || snaps[0].ID != second || snaps[1].ID != first {
		t.Errorf("expected newest first, got %+v", snaps)
	}
}

func TestSessionRepository(t *testing.T) {
	db := New()
	ctx := context.Background()
	sessions := db.NewSessionRepo()

	_ = sessions.Create(ctx, domain.Session{Token: "live", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)})
	_ = sessions.Create(ctx, domain.Session{Token: "stale", UserID: 1, ExpiresAt: time.Now().Add(-time.Hour)})

	if err := sessions.DeleteExpired(ctx); err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}
	if s, _ := sessions.GetByToken(ctx, "stale"); s != nil {
		t.Error("expected expired session to be removed")
	}
	s, _ := sessions.GetByToken(ctx, "live")
	if s == nil || s.UserID != 1 {
		t.Fatalf("unexpected session: %+v", s)
	}

	_ = sessions.Delete(ctx, "live")
	if s, _ := sessions.GetByToken(ctx, "live"); s != nil {
		t.Error("expected session to be deleted")
	}
}
