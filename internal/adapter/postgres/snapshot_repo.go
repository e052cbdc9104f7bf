package postgres

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"fitcore/internal/domain"
	"fitcore/internal/tracing"
)

const snapshotColumns = `id, user_id, day,
	goal_carbohydrates, goal_proteins, goal_fats, goal_fibers, goal_sodium, goal_calories,
	real_carbohydrates, real_proteins, real_fats, real_fibers, real_sodium, real_calories,
	adherence, created_at`

// CreateSnapshot inserts a snapshot. Snapshots are never updated.
func (d *DB) CreateSnapshot(ctx context.Context, s domain.NutritionSnapshot) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postgres.createSnapshot")
	span.SetAttributes(attribute.Int64("user_id", s.UserID), attribute.String("day", s.Day))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	g, r := s.Goal, s.Real
	var id int64
	err = d.sql.QueryRowContext(ctx,
		`INSERT INTO nutrition_snapshots(user_id, day,
			goal_carbohydrates, goal_proteins, goal_fats, goal_fibers, goal_sodium, goal_calories,
			real_carbohydrates, real_proteins, real_fats, real_fibers, real_sodium, real_calories,
			adherence, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id;`,
		s.UserID, s.Day,
		g.Carbohydrates, g.Proteins, g.Fats, g.Fibers, g.Sodium, g.Calories,
		r.Carbohydrates, r.Proteins, r.Fats, r.Fibers, r.Sodium, r.Calories,
		s.Adherence, s.CreatedAt.UTC(),
	).Scan(&id)
	return id, err
}

// ListRecentSnapshots returns the user's snapshots up to limit, newest first.
func (d *DB) ListRecentSnapshots(ctx context.Context, userID int64, limit int) ([]domain.NutritionSnapshot, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+snapshotColumns+" FROM nutrition_snapshots WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2;",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.NutritionSnapshot, 0, limit)
	for rows.Next() {
		var (
			s   domain.NutritionSnapshot
			day time.Time
		)
		g, r := &s.Goal, &s.Real
		if err := rows.Scan(&s.ID, &s.UserID, &day,
			&g.Carbohydrates, &g.Proteins, &g.Fats, &g.Fibers, &g.Sodium, &g.Calories,
			&r.Carbohydrates, &r.Proteins, &r.Fats, &r.Fibers, &r.Sodium, &r.Calories,
			&s.Adherence, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.Day = day.Format("2006-01-02")
		out = append(out, s)
	}
	return out, rows.Err()
}
