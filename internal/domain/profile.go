package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Sex is the biological sex used by the body composition and BMR formulas.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// ParseSex accepts "M" or "F" (case-insensitive).
func ParseSex(s string) (Sex, error) {
	switch Sex(strings.ToUpper(strings.TrimSpace(s))) {
	case SexMale:
		return SexMale, nil
	case SexFemale:
		return SexFemale, nil
	default:
		return "", fmt.Errorf("%w: sex must be \"M\" or \"F\", got %q", ErrInvalidProfile, s)
	}
}

// ActivityLevel is one of the fixed intensity levels a user can pick.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityModerate:  1.37,
	ActivityActive:    1.5,
}

// ParseActivityLevel validates s against the known activity levels.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	lvl := ActivityLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := activityMultipliers[lvl]; !ok {
		return "", fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, s)
	}
	return lvl, nil
}

// Multiplier returns the calorie multiplier applied to BMR.
func (a ActivityLevel) Multiplier() (float64, error) {
	m, ok := activityMultipliers[a]
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, string(a))
	}
	return m, nil
}

// Program is the training/nutrition program a user is assigned to.
type Program string

const (
	ProgramWeightLoss Program = "lose_weight"
	ProgramWeightGain Program = "gain_weight"
)

var programAliases = map[string]Program{
	"lose_weight": ProgramWeightLoss,
	"lose weight": ProgramWeightLoss,
	"weight_loss": ProgramWeightLoss,
	"weight loss": ProgramWeightLoss,
	"gain_weight": ProgramWeightGain,
	"gain weight": ProgramWeightGain,
	"weight_gain": ProgramWeightGain,
	"weight gain": ProgramWeightGain,
}

// ResolveProgram maps a stored program category onto a Program.
// Unrecognized categories fail with ErrUnknownProgramCategory when strict is
// set, and resolve to ProgramWeightGain otherwise.
func ResolveProgram(raw string, strict bool) (Program, error) {
	if p, ok := programAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return p, nil
	}
	if strict {
		return "", fmt.Errorf("%w: %q", ErrUnknownProgramCategory, raw)
	}
	return ProgramWeightGain, nil
}

// UserProfile is the account-owned data the nutrition engine reads.
type UserProfile struct {
	UserID          int64         `json:"userId"`
	Email           string        `json:"email"`
	Name            string        `json:"name"`
	Sex             Sex           `json:"sex"`
	BirthDate       *time.Time    `json:"birthDate"`
	ActivityLevel   ActivityLevel `json:"activityLevel"`
	ProgramCategory string        `json:"programCategory"`
	MealsPerDay     int           `json:"mealsPerDay"`
}

// ProfileRepository is the port for profile persistence.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (*UserProfile, error)
	UpdateProfile(ctx context.Context, p UserProfile) error
	ListUserIDs(ctx context.Context) ([]int64, error)
}
