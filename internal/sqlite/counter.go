package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CounterRepository implements repository.CounterRepository for SQLite.
// Increments are single-row UPDATEs under the database's own locking, so
// concurrent invocations cannot observe or issue the same value twice.
type CounterRepository struct {
	db *DB
}

// NewCounterRepository creates a new CounterRepository
func NewCounterRepository(db *DB) *CounterRepository {
	return &CounterRepository{db: db}
}

// Increment atomically increments the named counter and returns the new value
func (r *CounterRepository) Increment(ctx context.Context, name string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE counters SET value = value + 1 WHERE name = ?`, name)
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		// Counter rows are seeded at init; a missing row means an older data
		// directory, so create it at its first value.
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO counters (name, value) VALUES (?, 1)`, name); err != nil {
			return 0, fmt.Errorf("failed to create counter: %w", err)
		}
	}

	var value int64
	err = tx.QueryRowContext(ctx,
		`SELECT value FROM counters WHERE name = ?`, name).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("failed to read counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return value, nil
}

// Value returns the current value without incrementing, 0 for an absent row
func (r *CounterRepository) Value(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM counters WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter: %w", err)
	}
	return value, nil
}
