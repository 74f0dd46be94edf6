// Package betteritem implements the BetterItem repository using PostgreSQL.
package betteritem

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

const entity = "BetterItem"

var columns = []string{"id", "owner_id", "date", "title", "category", "completed", "source", "created_at", "updated_at"}

// Repo provides BetterItem persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new better-item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByDate returns the owner's better-items anchored to date, oldest first.
func (r *Repo) ListByDate(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.BetterItem, error) {
	query := postgres.Builder().
		Select(columns...).
		From("better_items").
		Where(squirrel.Eq{"owner_id": ownerID, "date": date}).
		OrderBy("created_at", "id")

	items, err := postgres.SelectAll[domain.BetterItem](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, entity, ownerID)
	}
	return items, nil
}

// Create inserts item and returns the stored row.
func (r *Repo) Create(ctx context.Context, item domain.BetterItem) (*domain.BetterItem, error) {
	query := postgres.Builder().
		Insert("better_items").
		Columns("id", "owner_id", "date", "title", "category", "completed", "source", "created_at").
		Values(item.ID, item.OwnerID, item.Date, item.Title, string(item.Category), item.Completed, string(item.Source), item.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := postgres.GetOne[domain.BetterItem](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, entity, item.ID)
	}
	return created, nil
}

// SetCompleted updates the completed flag of the owner's item.
func (r *Repo) SetCompleted(ctx context.Context, ownerID, id uuid.UUID, completed bool, now time.Time) (*domain.BetterItem, error) {
	return r.update(ctx, ownerID, id, map[string]any{"completed": completed}, now)
}

// UpdateTitle changes only the title of the owner's item.
func (r *Repo) UpdateTitle(ctx context.Context, ownerID, id uuid.UUID, title string, now time.Time) (*domain.BetterItem, error) {
	return r.update(ctx, ownerID, id, map[string]any{"title": title}, now)
}

// Delete removes the owner's item and reports whether a row was removed.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.Builder().
		Delete("better_items").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}))
	if err != nil {
		return false, postgres.MapError(err, entity, id)
	}
	return n > 0, nil
}

func (r *Repo) update(ctx context.Context, ownerID, id uuid.UUID, set map[string]any, now time.Time) (*domain.BetterItem, error) {
	query := postgres.Builder().
		Update("better_items").
		SetMap(set).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	item, err := postgres.GetOne[domain.BetterItem](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return item, nil
}
