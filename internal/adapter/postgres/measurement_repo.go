package postgres

import (
	"context"

	"fitcore/internal/domain"
	"fitcore/internal/tracing"
)

// AddMeasurement inserts a new measurement record.
func (d *DB) AddMeasurement(ctx context.Context, rec domain.AnthropometricRecord) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO measurements(user_id, height, weight, neck, waist, hip, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		rec.UserID, rec.Height, rec.Weight, rec.Neck, rec.Waist, rec.Hip, rec.CreatedAt.UTC(),
	).Scan(&id)
	return id, err
}

// LatestMeasurement returns the user's newest record, or nil.
func (d *DB) LatestMeasurement(ctx context.Context, userID int64) (_ *domain.AnthropometricRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postgres.latestMeasurement")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	recs, err := d.ListRecentMeasurements(ctx, userID, 1)
	if err != nil || len(recs) == 0 {
		return nil, err
	}
	return &recs[0], nil
}

// ListRecentMeasurements returns the user's records up to limit, newest first.
func (d *DB) ListRecentMeasurements(ctx context.Context, userID int64, limit int) ([]domain.AnthropometricRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, user_id, height, weight, neck, waist, hip, created_at
		FROM measurements WHERE user_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2;`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.AnthropometricRecord, 0, limit)
	for rows.Next() {
		var m domain.AnthropometricRecord
		if err := rows.Scan(&m.ID, &m.UserID, &m.Height, &m.Weight, &m.Neck, &m.Waist, &m.Hip, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Day = localDay(m.CreatedAt)
		out = append(out, m)
	}
	return out, rows.Err()
}
