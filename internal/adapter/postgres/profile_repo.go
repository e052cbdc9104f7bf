package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"fitcore/internal/domain"
	"fitcore/internal/tracing"
)

// GetProfile returns the user's profile, or nil if the user does not exist.
func (d *DB) GetProfile(ctx context.Context, userID int64) (_ *domain.UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postgres.getProfile")
	span.SetAttributes(attribute.Int64("user_id", userID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		p     domain.UserProfile
		sex   string
		level string
		birth sql.NullTime
	)
	err = d.sql.QueryRowContext(ctx,
		`SELECT id, email, name, sex, birth_date, activity_level, program_category, meals_per_day
		FROM users WHERE id = $1`,
		userID,
	).Scan(&p.UserID, &p.Email, &p.Name, &sex, &birth, &level, &p.ProgramCategory, &p.MealsPerDay)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.Sex = domain.Sex(sex)
	p.ActivityLevel = domain.ActivityLevel(level)
	if birth.Valid {
		// DATE columns come back as midnight UTC; keep the calendar date.
		b := time.Date(birth.Time.Year(), birth.Time.Month(), birth.Time.Day(), 0, 0, 0, 0, time.Local)
		p.BirthDate = &b
	}
	return &p, nil
}

// UpdateProfile replaces the editable profile fields.
func (d *DB) UpdateProfile(ctx context.Context, p domain.UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postgres.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var birth any
	if p.BirthDate != nil {
		birth = p.BirthDate.Format("2006-01-02")
	}
	res, err := d.sql.ExecContext(ctx,
		`UPDATE users SET name = $2, sex = $3, birth_date = $4, activity_level = $5,
			program_category = $6, meals_per_day = $7
		WHERE id = $1`,
		p.UserID, p.Name, string(p.Sex), birth, string(p.ActivityLevel), p.ProgramCategory, p.MealsPerDay,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ListUserIDs returns every user id in ascending order.
func (d *DB) ListUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT id FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
