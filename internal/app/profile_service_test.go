package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitcore/internal/app"
	"fitcore/internal/domain"
)

type mockProfileRepo struct {
	getFn    func(ctx context.Context, userID int64) (*domain.UserProfile, error)
	updateFn func(ctx context.Context, p domain.UserProfile) error
	listFn   func(ctx context.Context) ([]int64, error)
}

func (m *mockProfileRepo) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepo) UpdateProfile(ctx context.Context, p domain.UserProfile) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, p)
	}
	return nil
}

func (m *mockProfileRepo) ListUserIDs(ctx context.Context) ([]int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func existingProfile() *mockProfileRepo {
	return &mockProfileRepo{
		getFn: func(_ context.Context, userID int64) (*domain.UserProfile, error) {
			return &domain.UserProfile{UserID: userID, Email: "ana@example.com", Name: "Ana"}, nil
		},
	}
}

func validProfileUpdate() app.ProfileUpdate {
	return app.ProfileUpdate{
		Sex:             "f",
		BirthDate:       "1994-06-15",
		ActivityLevel:   "Moderate",
		ProgramCategory: "weight loss",
		MealsPerDay:     4,
	}
}

func TestProfileService_Get_NotFound(t *testing.T) {
	svc := app.NewProfileService(&mockProfileRepo{})
	_, err := svc.Get(context.Background(), 1)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfileService_Update_Success(t *testing.T) {
	repo := existingProfile()
	var stored domain.UserProfile
	repo.updateFn = func(_ context.Context, p domain.UserProfile) error {
		stored = p
		return nil
	}
	svc := app.NewProfileService(repo)

	got, err := svc.Update(context.Background(), 1, validProfileUpdate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Sex != domain.SexFemale || stored.ActivityLevel != domain.ActivityModerate {
		t.Fatalf("enums not normalized: %+v", stored)
	}
	if stored.ProgramCategory != string(domain.ProgramWeightLoss) {
		t.Fatalf("program not canonical: %q", stored.ProgramCategory)
	}
	if stored.BirthDate == nil || stored.BirthDate.Format("2006-01-02") != "1994-06-15" {
		t.Fatalf("unexpected birth date: %v", stored.BirthDate)
	}
	if got.Name != "Ana" {
		t.Fatalf("empty name must keep the existing one, got %q", got.Name)
	}
}

func TestProfileService_Update_Validation(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	tests := []struct {
		name   string
		mutate func(u *app.ProfileUpdate)
	}{
		{"bad sex", func(u *app.ProfileUpdate) { u.Sex = "x" }},
		{"bad activity", func(u *app.ProfileUpdate) { u.ActivityLevel = "extreme" }},
		{"unknown program", func(u *app.ProfileUpdate) { u.ProgramCategory = "bulk" }},
		{"zero meals", func(u *app.ProfileUpdate) { u.MealsPerDay = 0 }},
		{"too many meals", func(u *app.ProfileUpdate) { u.MealsPerDay = 11 }},
		{"bad birth date", func(u *app.ProfileUpdate) { u.BirthDate = "15.06.1994" }},
		{"future birth date", func(u *app.ProfileUpdate) { u.BirthDate = tomorrow }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := existingProfile()
			repo.updateFn = func(context.Context, domain.UserProfile) error {
				t.Fatal("invalid profile must not be stored")
				return nil
			}
			svc := app.NewProfileService(repo)
			u := validProfileUpdate()
			tc.mutate(&u)
			_, err := svc.Update(context.Background(), 1, u)
			if !errors.Is(err, app.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestProfileService_Update_ClearsBirthDate(t *testing.T) {
	repo := existingProfile()
	var stored domain.UserProfile
	repo.updateFn = func(_ context.Context, p domain.UserProfile) error {
		stored = p
		return nil
	}
	svc := app.NewProfileService(repo)
	u := validProfileUpdate()
	u.BirthDate = ""
	if _, err := svc.Update(context.Background(), 1, u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.BirthDate != nil {
		t.Fatalf("expected nil birth date, got %v", stored.BirthDate)
	}
}
