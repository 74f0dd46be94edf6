package postgres

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// DailyTable describes a singleton-per-day table with a unique
// (owner_id, date) index. Columns must match the scan target's db tags.
type DailyTable struct {
	Name    string
	Columns []string
}

// EnsureDaily returns the owner's row for date, inserting one populated with
// column defaults first if none exists. Concurrent callers all observe the
// same row.
func EnsureDaily[T any](ctx context.Context, q Querier, t DailyTable, ownerID uuid.UUID, date, now time.Time) (*T, error) {
	insert := Builder().
		Insert(t.Name).
		Columns("id", "owner_id", "date", "created_at").
		Values(uuid.New(), ownerID, date, now).
		Suffix("ON CONFLICT (owner_id, date) DO NOTHING")

	if _, err := ExecAffected(ctx, q, insert); err != nil {
		return nil, fmt.Errorf("ensure %s: %w", t.Name, err)
	}

	query := Builder().
		Select(t.Columns...).
		From(t.Name).
		Where(squirrel.Eq{"owner_id": ownerID, "date": date})

	row, err := GetOne[T](ctx, q, query)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", t.Name, err)
	}
	return row, nil
}

// UpsertDaily writes set onto the owner's row for date in one statement.
// A missing row is created with column defaults overlaid by set; an existing
// row only has the columns in set overwritten. updated_at is always stamped.
func UpsertDaily[T any](ctx context.Context, q Querier, t DailyTable, ownerID uuid.UUID, date time.Time, set map[string]any, now time.Time) (*T, error) {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	slices.Sort(names)

	cols := []string{"id", "owner_id", "date", "created_at", "updated_at"}
	vals := []any{uuid.New(), ownerID, date, now, now}
	updates := []string{"updated_at = EXCLUDED.updated_at"}
	for _, name := range names {
		cols = append(cols, name)
		vals = append(vals, set[name])
		updates = append(updates, name+" = EXCLUDED."+name)
	}

	query := Builder().
		Insert(t.Name).
		Columns(cols...).
		Values(vals...).
		Suffix("ON CONFLICT (owner_id, date) DO UPDATE SET " + strings.Join(updates, ", ") +
			" RETURNING " + strings.Join(t.Columns, ", "))

	row, err := GetOne[T](ctx, q, query)
	if err != nil {
		return nil, fmt.Errorf("upsert %s: %w", t.Name, err)
	}
	return row, nil
}
