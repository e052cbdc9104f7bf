package domain

import (
	"fmt"
	"math"
)

// BodyComposition is the fat/fat-free split of a measurement's weight.
type BodyComposition struct {
	FatPercent  float64 `json:"fatPercent"`
	FatMass     float64 `json:"fatMass"`
	FatFreeMass float64 `json:"fatFreeMass"`
}

// EstimateBodyComposition applies the U.S. Navy circumference method to m.
func EstimateBodyComposition(m AnthropometricRecord, sex Sex) (BodyComposition, error) {
	if m.Height <= 0 || m.Weight <= 0 {
		return BodyComposition{}, fmt.Errorf("%w: height and weight must be > 0", ErrInvalidMeasurement)
	}

	var pct float64
	switch sex {
	case SexMale:
		girth := m.Waist - m.Neck
		if girth <= 0 {
			return BodyComposition{}, fmt.Errorf("%w: waist-neck = %.2f", ErrInvalidMeasurement, girth)
		}
		pct = 495/(1.0324-0.19077*math.Log10(girth)+0.15456*math.Log10(m.Height)) - 450
	case SexFemale:
		girth := m.Waist + m.Hip - m.Neck
		if girth <= 0 {
			return BodyComposition{}, fmt.Errorf("%w: waist+hip-neck = %.2f", ErrInvalidMeasurement, girth)
		}
		pct = 495/(1.29579-0.35004*math.Log10(girth)+0.22100*math.Log10(m.Height)) - 450
	default:
		return BodyComposition{}, fmt.Errorf("%w: sex %q", ErrInvalidProfile, string(sex))
	}

	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return BodyComposition{}, fmt.Errorf("%w: body fat is not finite", ErrInvalidMeasurement)
	}

	fatMass := pct / 100 * m.Weight
	return BodyComposition{
		FatPercent:  pct,
		FatMass:     fatMass,
		FatFreeMass: m.Weight - fatMass,
	}, nil
}
