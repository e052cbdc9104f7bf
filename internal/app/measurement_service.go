package app

import (
	"context"
	"time"

	"fitcore/internal/domain"
)

// MeasurementInput is a set of body measurements in the caller's units.
type MeasurementInput struct {
	Height     float64 `json:"height"`
	Weight     float64 `json:"weight"`
	Neck       float64 `json:"neck"`
	Waist      float64 `json:"waist"`
	Hip        float64 `json:"hip"`
	WeightUnit string  `json:"weightUnit"`
	LengthUnit string  `json:"lengthUnit"`
}

// MeasurementService encapsulates anthropometric record keeping.
type MeasurementService struct {
	repo domain.MeasurementRepository
}

// NewMeasurementService creates a MeasurementService backed by the given repository.
func NewMeasurementService(repo domain.MeasurementRepository) *MeasurementService {
	return &MeasurementService{repo: repo}
}

// Record validates a measurement set, converts it to kg/cm and stores it.
func (s *MeasurementService) Record(ctx context.Context, userID int64, in MeasurementInput) (*domain.AnthropometricRecord, error) {
	if in.WeightUnit == "" {
		in.WeightUnit = "kg"
	}
	if in.LengthUnit == "" {
		in.LengthUnit = "cm"
	}
	if in.WeightUnit != "kg" && in.WeightUnit != "lb" {
		return nil, validationErrorf("weightUnit must be \"kg\" or \"lb\"")
	}
	if in.LengthUnit != "cm" && in.LengthUnit != "in" {
		return nil, validationErrorf("lengthUnit must be \"cm\" or \"in\"")
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"height", in.Height},
		{"weight", in.Weight},
		{"neck", in.Neck},
		{"waist", in.Waist},
		{"hip", in.Hip},
	} {
		if f.value <= 0 {
			return nil, validationErrorf("%s must be > 0", f.name)
		}
	}

	now := time.Now()
	rec := domain.AnthropometricRecord{
		UserID:    userID,
		Day:       now.In(time.Local).Format("2006-01-02"),
		Height:    domain.ConvertLength(in.Height, in.LengthUnit, "cm"),
		Weight:    domain.ConvertWeight(in.Weight, in.WeightUnit, "kg"),
		Neck:      domain.ConvertLength(in.Neck, in.LengthUnit, "cm"),
		Waist:     domain.ConvertLength(in.Waist, in.LengthUnit, "cm"),
		Hip:       domain.ConvertLength(in.Hip, in.LengthUnit, "cm"),
		CreatedAt: now,
	}
	id, err := s.repo.AddMeasurement(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return &rec, nil
}

// Latest returns the newest record, or nil if the user has none.
func (s *MeasurementService) Latest(ctx context.Context, userID int64) (*domain.AnthropometricRecord, error) {
	return s.repo.LatestMeasurement(ctx, userID)
}

// ListRecent returns the most recent records up to limit, newest first.
func (s *MeasurementService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.AnthropometricRecord, error) {
	return s.repo.ListRecentMeasurements(ctx, userID, capLimit(limit))
}
