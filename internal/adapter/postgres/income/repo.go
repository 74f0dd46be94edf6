// Package income implements the IncomeEntry ledger repository using PostgreSQL.
package income

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

const entity = "IncomeEntry"

var columns = []string{"id", "owner_id", "date", "source", "amount", "currency", "created_at", "updated_at"}

// Repo provides IncomeEntry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new income repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends e to the ledger and returns the stored row.
func (r *Repo) Create(ctx context.Context, e domain.IncomeEntry) (*domain.IncomeEntry, error) {
	query := postgres.Builder().
		Insert("income_entries").
		Columns("id", "owner_id", "date", "source", "amount", "currency", "created_at").
		Values(e.ID, e.OwnerID, e.Date, e.Source, e.Amount, e.Currency, e.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := postgres.GetOne[domain.IncomeEntry](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, entity, e.ID)
	}
	return created, nil
}

// List returns all of the owner's entries, newest date first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID) ([]domain.IncomeEntry, error) {
	query := postgres.Builder().
		Select(columns...).
		From("income_entries").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("date DESC", "created_at DESC")

	return r.list(ctx, ownerID, query)
}

// ListBetween returns the owner's entries dated within [from, to], newest first.
func (r *Repo) ListBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.IncomeEntry, error) {
	query := postgres.Builder().
		Select(columns...).
		From("income_entries").
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date DESC", "created_at DESC")

	return r.list(ctx, ownerID, query)
}

// LatestDate returns the date of the owner's most recent entry, or nil when
// the ledger is empty.
func (r *Repo) LatestDate(ctx context.Context, ownerID uuid.UUID) (*time.Time, error) {
	sql, args, err := postgres.Builder().
		Select("max(date)").
		From("income_entries").
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var latest *time.Time
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&latest); err != nil {
		return nil, postgres.MapError(err, entity, ownerID)
	}
	return latest, nil
}

func (r *Repo) list(ctx context.Context, ownerID uuid.UUID, query squirrel.SelectBuilder) ([]domain.IncomeEntry, error) {
	entries, err := postgres.SelectAll[domain.IncomeEntry](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, entity, ownerID)
	}
	return entries, nil
}
