package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// querier is the subset of *sql.DB and *sql.Tx the queries need.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a SQLite TEXT timestamp, returning the zero time if
// none of the known layouts match.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

const observanceColumns = `
	id, name, calendar, kind, month, day, offset_days, description,
	created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanObservance(row rowScanner) (*Observance, error) {
	var o Observance
	var description sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Calendar,
		&o.Kind,
		&o.Month,
		&o.Day,
		&o.OffsetDays,
		&description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		o.Description = &description.String
	}
	o.CreatedAt = parseTimestamp(createdAt)
	o.UpdatedAt = parseTimestamp(updatedAt)

	return &o, nil
}

// =============================================================================
// Observance Queries
// =============================================================================

func createObservance(ctx context.Context, q querier, o *Observance) error {
	query := `
		INSERT INTO observances (name, calendar, kind, month, day, offset_days, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id, created_at, updated_at
	`

	var createdAt, updatedAt string
	err := q.QueryRowContext(ctx, query,
		o.Name, o.Calendar, o.Kind, o.Month, o.Day, o.OffsetDays, o.Description,
	).Scan(&o.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert observance: %w", err)
	}

	o.CreatedAt = parseTimestamp(createdAt)
	o.UpdatedAt = parseTimestamp(updatedAt)
	return nil
}

// upsertObservance inserts an observance or, when the name exists, replaces
// its definition. Safe to run repeatedly with the same seed data.
func upsertObservance(ctx context.Context, q querier, o *Observance) error {
	query := `
		INSERT INTO observances (name, calendar, kind, month, day, offset_days, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			calendar = excluded.calendar,
			kind = excluded.kind,
			month = excluded.month,
			day = excluded.day,
			offset_days = excluded.offset_days,
			description = excluded.description,
			updated_at = datetime('now')
		RETURNING id
	`

	err := q.QueryRowContext(ctx, query,
		o.Name, o.Calendar, o.Kind, o.Month, o.Day, o.OffsetDays, o.Description,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("upsert observance %q: %w", o.Name, err)
	}
	return nil
}

func getObservance(ctx context.Context, q querier, id int64) (*Observance, error) {
	query := `SELECT` + observanceColumns + `FROM observances WHERE id = ?`

	o, err := scanObservance(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query observance %d: %w", id, err)
	}
	return o, nil
}

func getObservanceByName(ctx context.Context, q querier, name string) (*Observance, error) {
	query := `SELECT` + observanceColumns + `FROM observances WHERE name = ?`

	o, err := scanObservance(q.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query observance %q: %w", name, err)
	}
	return o, nil
}

func listObservances(ctx context.Context, q querier, calendar string) ([]Observance, error) {
	query := `SELECT` + observanceColumns + `FROM observances`
	var args []any
	if calendar != "" {
		query += ` WHERE calendar = ?`
		args = append(args, calendar)
	}
	query += ` ORDER BY id ASC`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query observances: %w", err)
	}
	defer rows.Close()

	observances := []Observance{}
	for rows.Next() {
		o, err := scanObservance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan observance row: %w", err)
		}
		observances = append(observances, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate observance rows: %w", err)
	}

	return observances, nil
}

func deleteObservance(ctx context.Context, q querier, id int64) error {
	result, err := q.ExecContext(ctx, `DELETE FROM observances WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete observance: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateObservance inserts a new observance and sets its ID and timestamps.
// Returns ErrDuplicate if the name is taken.
func (db *DB) CreateObservance(ctx context.Context, o *Observance) error {
	return createObservance(ctx, db.DB, o)
}

// UpsertObservance inserts or updates an observance by name.
func (db *DB) UpsertObservance(ctx context.Context, o *Observance) error {
	return upsertObservance(ctx, db.DB, o)
}

// GetObservance returns the observance with the given ID, or ErrNotFound.
func (db *DB) GetObservance(ctx context.Context, id int64) (*Observance, error) {
	return getObservance(ctx, db.DB, id)
}

// GetObservanceByName returns the observance with the given name, or ErrNotFound.
func (db *DB) GetObservanceByName(ctx context.Context, name string) (*Observance, error) {
	return getObservanceByName(ctx, db.DB, name)
}

// ListObservances returns every observance in insertion order.
func (db *DB) ListObservances(ctx context.Context) ([]Observance, error) {
	return listObservances(ctx, db.DB, "")
}

// ListObservancesByCalendar returns the observances defined in one calendar.
func (db *DB) ListObservancesByCalendar(ctx context.Context, calendar string) ([]Observance, error) {
	return listObservances(ctx, db.DB, calendar)
}

// DeleteObservance removes an observance. Returns ErrNotFound if the ID
// doesn't exist.
func (db *DB) DeleteObservance(ctx context.Context, id int64) error {
	return deleteObservance(ctx, db.DB, id)
}

// GetObservanceStats counts observances per calendar.
func (db *DB) GetObservanceStats(ctx context.Context) (*ObservanceStats, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT calendar, COUNT(*)
		FROM observances
		GROUP BY calendar
	`)
	if err != nil {
		return nil, fmt.Errorf("query observance stats: %w", err)
	}
	defer rows.Close()

	stats := &ObservanceStats{ByCalendar: map[string]int{}}
	for rows.Next() {
		var calendar string
		var n int
		if err := rows.Scan(&calendar, &n); err != nil {
			return nil, fmt.Errorf("scan observance stats: %w", err)
		}
		stats.ByCalendar[calendar] = n
		stats.Total += n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate observance stats: %w", err)
	}

	return stats, nil
}

// Transaction variants, used by the seed importer.

func (tx *Tx) CreateObservance(ctx context.Context, o *Observance) error {
	return createObservance(ctx, tx.Tx, o)
}

func (tx *Tx) UpsertObservance(ctx context.Context, o *Observance) error {
	return upsertObservance(ctx, tx.Tx, o)
}

func (tx *Tx) ListObservances(ctx context.Context) ([]Observance, error) {
	return listObservances(ctx, tx.Tx, "")
}

func (tx *Tx) DeleteObservance(ctx context.Context, id int64) error {
	return deleteObservance(ctx, tx.Tx, id)
}
