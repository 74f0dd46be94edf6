package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// SelectAll runs query and scans every row into T. It never returns a nil slice.
func SelectAll[T any](ctx context.Context, q Querier, query squirrel.Sqlizer) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	out := []T{}
	if err := pgxscan.Select(ctx, q, &out, sql, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOne runs query and scans exactly one row into T.
// The returned error wraps pgx.ErrNoRows when nothing matched.
func GetOne[T any](ctx context.Context, q Querier, query squirrel.Sqlizer) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var out T
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExecAffected runs a write statement and returns the affected row count.
func ExecAffected(ctx context.Context, q Querier, query squirrel.Sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
