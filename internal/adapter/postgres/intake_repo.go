package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"fitcore/internal/domain"
	"fitcore/internal/tracing"
)

// AddFood inserts a catalogue entry.
func (d *DB) AddFood(ctx context.Context, f domain.FoodItem) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO foods(name, brand, carbohydrates, proteins, fats, fibers, sodium, calories)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		f.Name, f.Brand, f.Per100.Carbohydrates, f.Per100.Proteins, f.Per100.Fats,
		f.Per100.Fibers, f.Per100.Sodium, f.Per100.Calories,
	).Scan(&id)
	return id, err
}

// ListFoods lists catalogue entries by name.
func (d *DB) ListFoods(ctx context.Context, limit int) ([]domain.FoodItem, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, name, brand, carbohydrates, proteins, fats, fibers, sodium, calories
		FROM foods ORDER BY name, id LIMIT $1;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.FoodItem, 0, limit)
	for rows.Next() {
		var f domain.FoodItem
		m := &f.Per100
		if err := rows.Scan(&f.ID, &f.Name, &f.Brand, &m.Carbohydrates, &m.Proteins, &m.Fats, &m.Fibers, &m.Sodium, &m.Calories); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// AddIngestion inserts the event and all of its lines in one transaction.
func (d *DB) AddIngestion(ctx context.Context, ev domain.IngestionEvent) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postgres.addIngestion")
	span.SetAttributes(attribute.Int("lines", len(ev.Lines)))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var id int64
	err = tx.QueryRowContext(ctx,
		"INSERT INTO ingestions(user_id, meal_number, created_at) VALUES($1, $2, $3) RETURNING id;",
		ev.UserID, ev.MealNumber, ev.CreatedAt.UTC(),
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO ingestion_lines(ingestion_id, food_id, quantity) VALUES($1, $2, $3);")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, l := range ev.Lines {
		if _, err = stmt.ExecContext(ctx, id, l.FoodID, l.Quantity); err != nil {
			if isForeignKeyViolation(err) {
				err = fmt.Errorf("%w: id %d", domain.ErrFoodNotFound, l.FoodID)
			}
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteLatestIngestion removes the user's most recent event. Its lines go
// with it via ON DELETE CASCADE.
func (d *DB) DeleteLatestIngestion(ctx context.Context, userID int64) (bool, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"SELECT id FROM ingestions WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1;",
		userID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	_, err = d.sql.ExecContext(ctx, "DELETE FROM ingestions WHERE id = $1 AND user_id = $2;", id, userID)
	return err == nil, err
}

// IntakeLinesForLocalDay returns every line the user logged on the local day,
// joined with the food's per-100 macros in a single query.
func (d *DB) IntakeLinesForLocalDay(ctx context.Context, userID int64, day string) (_ []domain.IntakeLine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postgres.intakeLinesForLocalDay")
	span.SetAttributes(attribute.Int64("user_id", userID), attribute.String("day", day))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start, end, err := dayBounds(day)
	if err != nil {
		return nil, err
	}

	rows, err := d.sql.QueryContext(ctx,
		`SELECT i.id, i.meal_number, f.id, f.name, l.quantity,
			f.carbohydrates, f.proteins, f.fats, f.fibers, f.sodium, f.calories
		FROM ingestions i
		JOIN ingestion_lines l ON l.ingestion_id = i.id
		JOIN foods f ON f.id = l.food_id
		WHERE i.user_id = $1 AND i.created_at >= $2 AND i.created_at < $3
		ORDER BY i.created_at, l.id;`,
		userID, start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.IntakeLine
	for rows.Next() {
		var l domain.IntakeLine
		m := &l.Per100
		if err := rows.Scan(&l.EventID, &l.MealNumber, &l.FoodID, &l.FoodName, &l.Quantity,
			&m.Carbohydrates, &m.Proteins, &m.Fats, &m.Fibers, &m.Sodium, &m.Calories); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
