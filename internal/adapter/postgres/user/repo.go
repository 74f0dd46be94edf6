// Package user implements the owner repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

var columns = []string{"id", "name", "timezone", "created_at", "updated_at"}

// ownedTables lists every owner-scoped table in reverse dependency order,
// so deleting in this order never trips a foreign key.
var ownedTables = []string{
	"deadline_status_snapshots",
	"schedule_block_instances",
	"schedule_block_definitions",
	"deadlines",
	"income_entries",
	"weekly_reviews",
	"diet_entries",
	"discipline_entries",
	"better_items",
	"tasks",
	"days",
	"ai_job_runs",
}

// OwnedTables returns the owner-scoped table names in deletion order.
func OwnedTables() []string {
	return slices.Clone(ownedTables)
}

// Repo provides owner persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new owner repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Ensure inserts the owner if it does not exist yet and returns the stored row.
// An existing owner is returned unchanged.
func (r *Repo) Ensure(ctx context.Context, u domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder().
		Insert("users").
		Columns("id", "name", "timezone", "created_at").
		Values(u.ID, u.Name, u.Timezone, u.CreatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING")

	if _, err := postgres.ExecAffected(ctx, q, insert); err != nil {
		return nil, postgres.MapError(err, "User", u.ID)
	}

	return r.GetByID(ctx, u.ID)
}

// GetByID returns an owner by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns...).
		From("users").
		Where(squirrel.Eq{"id": id})

	u, err := postgres.GetOne[domain.User](ctx, q, query)
	if err != nil {
		return nil, postgres.MapError(err, "User", id)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Owned data
// ---------------------------------------------------------------------------

// CountOwned returns how many rows of table belong to ownerID.
// table must be one of OwnedTables.
func (r *Repo) CountOwned(ctx context.Context, ownerID uuid.UUID, table string) (int64, error) {
	if !slices.Contains(ownedTables, table) {
		return 0, fmt.Errorf("count owned rows: unknown table %q", table)
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, table, ownerID)
	}
	return n, nil
}

// DeleteOwned removes every row belonging to ownerID from the owned tables.
// The owner row itself is kept. Run it inside a transaction to make the
// reset all-or-nothing.
func (r *Repo) DeleteOwned(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int64
	for _, table := range ownedTables {
		n, err := postgres.ExecAffected(ctx, q, postgres.Builder().
			Delete(table).
			Where(squirrel.Eq{"owner_id": ownerID}))
		if err != nil {
			return total, postgres.MapError(err, table, ownerID)
		}
		total += n
	}
	return total, nil
}
