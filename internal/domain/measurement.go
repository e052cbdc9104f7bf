package domain

import (
	"context"
	"time"
)

// AnthropometricRecord is one set of body measurements. Weight is in kg,
// lengths in cm.
type AnthropometricRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Day       string    `json:"day"`
	Height    float64   `json:"height"`
	Weight    float64   `json:"weight"`
	Neck      float64   `json:"neck"`
	Waist     float64   `json:"waist"`
	Hip       float64   `json:"hip"`
	CreatedAt time.Time `json:"createdAt"`
}

// MeasurementRepository is the port for measurement persistence.
type MeasurementRepository interface {
	AddMeasurement(ctx context.Context, rec AnthropometricRecord) (int64, error)
	// LatestMeasurement returns nil when the user has no records.
	LatestMeasurement(ctx context.Context, userID int64) (*AnthropometricRecord, error)
	ListRecentMeasurements(ctx context.Context, userID int64, limit int) ([]AnthropometricRecord, error)
}
