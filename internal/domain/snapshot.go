package domain

import (
	"context"
	"time"
)

// NutritionSnapshot is one persisted goal-vs-real nutrition record. Snapshots
// are never updated; a later computation inserts a new row.
type NutritionSnapshot struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Day       string    `json:"day"`
	Goal      Macros    `json:"goal"`
	Real      Macros    `json:"real"`
	Adherence float64   `json:"adherence"`
	CreatedAt time.Time `json:"createdAt"`
}

// SnapshotRepository is the port for snapshot persistence.
type SnapshotRepository interface {
	CreateSnapshot(ctx context.Context, s NutritionSnapshot) (int64, error)
	ListRecentSnapshots(ctx context.Context, userID int64, limit int) ([]NutritionSnapshot, error)
}
