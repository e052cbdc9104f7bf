package app

import (
	"context"
	"strings"
	"time"

	"fitcore/internal/domain"
)

// ProfileUpdate carries the editable profile fields as sent by clients.
// BirthDate is "YYYY-MM-DD" or empty to clear it.
type ProfileUpdate struct {
	Name            string `json:"name"`
	Sex             string `json:"sex"`
	BirthDate       string `json:"birthDate"`
	ActivityLevel   string `json:"activityLevel"`
	ProgramCategory string `json:"programCategory"`
	MealsPerDay     int    `json:"mealsPerDay"`
}

// ProfileService manages the profile fields the nutrition engine reads.
type ProfileService struct {
	repo domain.ProfileRepository
}

func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrUserNotFound
	}
	return p, nil
}

// Update validates u against the enumerated profile values and stores it.
// Program categories are always checked strictly here, so only known
// programs are ever written.
func (s *ProfileService) Update(ctx context.Context, userID int64, u ProfileUpdate) (*domain.UserProfile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	sex, err := domain.ParseSex(u.Sex)
	if err != nil {
		return nil, validationErrorf("%s", err)
	}
	level, err := domain.ParseActivityLevel(u.ActivityLevel)
	if err != nil {
		return nil, validationErrorf("%s", err)
	}
	program, err := domain.ResolveProgram(u.ProgramCategory, true)
	if err != nil {
		return nil, validationErrorf("%s", err)
	}
	if u.MealsPerDay < 1 || u.MealsPerDay > 10 {
		return nil, validationErrorf("mealsPerDay must be between 1 and 10")
	}

	var birth *time.Time
	if strings.TrimSpace(u.BirthDate) != "" {
		b, err := time.ParseInLocation("2006-01-02", u.BirthDate, time.Local)
		if err != nil {
			return nil, validationErrorf("birthDate must be YYYY-MM-DD")
		}
		if b.After(time.Now()) {
			return nil, validationErrorf("birthDate is in the future")
		}
		birth = &b
	}

	if name := strings.TrimSpace(u.Name); name != "" {
		p.Name = name
	}
	p.Sex = sex
	p.BirthDate = birth
	p.ActivityLevel = level
	p.ProgramCategory = string(program)
	p.MealsPerDay = u.MealsPerDay

	if err := s.repo.UpdateProfile(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}
