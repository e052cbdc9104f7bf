// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Ping reports whether the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.sql.PingContext(ctx)
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL DEFAULT '',
			sex TEXT NOT NULL DEFAULT '' CHECK(sex IN ('', 'M', 'F')),
			birth_date DATE,
			activity_level TEXT NOT NULL DEFAULT 'sedentary',
			program_category TEXT NOT NULL DEFAULT '',
			meals_per_day INTEGER NOT NULL DEFAULT 3 CHECK(meals_per_day BETWEEN 1 AND 10),
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			user_agent TEXT NOT NULL DEFAULT '',
			ip TEXT NOT NULL DEFAULT '',
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);",
		`CREATE TABLE IF NOT EXISTS measurements (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			height DOUBLE PRECISION NOT NULL CHECK(height > 0),
			weight DOUBLE PRECISION NOT NULL CHECK(weight > 0),
			neck DOUBLE PRECISION NOT NULL CHECK(neck > 0),
			waist DOUBLE PRECISION NOT NULL CHECK(waist > 0),
			hip DOUBLE PRECISION NOT NULL CHECK(hip > 0),
			created_at TIMESTAMPTZ NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_measurements_user_created ON measurements(user_id, created_at DESC);",
		`CREATE TABLE IF NOT EXISTS foods (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			brand TEXT NOT NULL DEFAULT '',
			carbohydrates DOUBLE PRECISION NOT NULL CHECK(carbohydrates >= 0),
			proteins DOUBLE PRECISION NOT NULL CHECK(proteins >= 0),
			fats DOUBLE PRECISION NOT NULL CHECK(fats >= 0),
			fibers DOUBLE PRECISION NOT NULL CHECK(fibers >= 0),
			sodium DOUBLE PRECISION NOT NULL CHECK(sodium >= 0),
			calories DOUBLE PRECISION NOT NULL CHECK(calories >= 0)
		);`,
		`CREATE TABLE IF NOT EXISTS ingestions (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			meal_number INTEGER NOT NULL CHECK(meal_number >= 1),
			created_at TIMESTAMPTZ NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_ingestions_user_created ON ingestions(user_id, created_at);",
		`CREATE TABLE IF NOT EXISTS ingestion_lines (
			id BIGSERIAL PRIMARY KEY,
			ingestion_id BIGINT NOT NULL REFERENCES ingestions(id) ON DELETE CASCADE,
			food_id BIGINT NOT NULL REFERENCES foods(id),
			quantity DOUBLE PRECISION NOT NULL CHECK(quantity > 0)
		);`,
		"CREATE INDEX IF NOT EXISTS idx_ingestion_lines_ingestion ON ingestion_lines(ingestion_id);",
		`CREATE TABLE IF NOT EXISTS nutrition_snapshots (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			day DATE NOT NULL,
			goal_carbohydrates NUMERIC(9,2) NOT NULL,
			goal_proteins NUMERIC(9,2) NOT NULL,
			goal_fats NUMERIC(9,2) NOT NULL,
			goal_fibers NUMERIC(9,2) NOT NULL,
			goal_sodium NUMERIC(9,2) NOT NULL,
			goal_calories NUMERIC(9,2) NOT NULL,
			real_carbohydrates NUMERIC(9,2) NOT NULL,
			real_proteins NUMERIC(9,2) NOT NULL,
			real_fats NUMERIC(9,2) NOT NULL,
			real_fibers NUMERIC(9,2) NOT NULL,
			real_sodium NUMERIC(9,2) NOT NULL,
			real_calories NUMERIC(9,2) NOT NULL,
			adherence NUMERIC(5,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_nutrition_snapshots_user_created ON nutrition_snapshots(user_id, created_at DESC);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// dayBounds returns the UTC window of a local calendar day.
func dayBounds(localDay string) (time.Time, time.Time, error) {
	dayStart, err := time.ParseInLocation("2006-01-02", localDay, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return dayStart.UTC(), dayStart.AddDate(0, 0, 1).UTC(), nil
}

func localDay(t time.Time) string {
	return t.In(time.Local).Format("2006-01-02")
}

// isForeignKeyViolation reports a pq foreign_key_violation (SQLSTATE 23503).
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
