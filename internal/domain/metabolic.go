package domain

import (
	"fmt"
	"time"
)

// AgeOn returns the number of full years between birth and day.
func AgeOn(birth, day time.Time) int {
	age := day.Year() - birth.Year()
	if day.Month() < birth.Month() || (day.Month() == birth.Month() && day.Day() < birth.Day()) {
		age--
	}
	return age
}

// MetabolicInput carries everything the BMR formula needs.
type MetabolicInput struct {
	Weight             float64
	BodyFatMass        float64
	Sex                Sex
	BirthDate          *time.Time
	On                 time.Time
	ActivityMultiplier float64
}

// MetabolicRate is the result of CalculateMetabolicRate.
type MetabolicRate struct {
	FatFreeMass float64 `json:"fatFreeMass"`
	FatMass     float64 `json:"fatMass"`
	Age         int     `json:"age"`
	BMR         float64 `json:"bmr"`
	CalorieGoal float64 `json:"calorieGoal"`
}

// CalculateMetabolicRate computes BMR from fat-free and fat mass, then scales
// it by the activity multiplier to get the daily calorie goal.
func CalculateMetabolicRate(in MetabolicInput) (MetabolicRate, error) {
	if in.BirthDate == nil {
		return MetabolicRate{}, ErrMissingBirthDate
	}
	if in.BirthDate.After(in.On) {
		return MetabolicRate{}, fmt.Errorf("%w: birth date %s is after %s",
			ErrInvalidProfile, in.BirthDate.Format("2006-01-02"), in.On.Format("2006-01-02"))
	}

	var sexFactor float64
	switch in.Sex {
	case SexMale:
		sexFactor = 1
	case SexFemale:
		sexFactor = 0
	default:
		return MetabolicRate{}, fmt.Errorf("%w: sex %q", ErrInvalidProfile, string(in.Sex))
	}

	// fatMass is derived back from fatFreeMass rather than reusing BodyFatMass.
	fatFreeMass := in.Weight - in.BodyFatMass
	fatMass := in.Weight - fatFreeMass
	age := AgeOn(*in.BirthDate, in.On)

	bmr := 13.587*fatFreeMass + 9.613*fatMass + 198*sexFactor - 3.351*float64(age) + 674
	return MetabolicRate{
		FatFreeMass: fatFreeMass,
		FatMass:     fatMass,
		Age:         age,
		BMR:         bmr,
		CalorieGoal: bmr * in.ActivityMultiplier,
	}, nil
}
