// Package discipline implements the DisciplineEntry repository using PostgreSQL.
package discipline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

const entity = "DisciplineEntry"

var table = postgres.DailyTable{
	Name: "discipline_entries",
	Columns: []string{
		"id", "owner_id", "date",
		"gym", "walk", "cooked", "diet", "meditation", "water", "note",
		"created_at", "updated_at",
	},
}

// Repo provides DisciplineEntry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new discipline repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Ensure returns the owner's entry for date, creating an all-false one on first access.
func (r *Repo) Ensure(ctx context.Context, ownerID uuid.UUID, date, now time.Time) (*domain.DisciplineEntry, error) {
	e, err := postgres.EnsureDaily[domain.DisciplineEntry](ctx, postgres.QuerierFromCtx(ctx, r.db), table, ownerID, date, now)
	if err != nil {
		return nil, postgres.MapError(err, entity, ownerID)
	}
	return e, nil
}

// Upsert applies patch to the owner's entry for date, creating it if needed.
func (r *Repo) Upsert(ctx context.Context, ownerID uuid.UUID, date time.Time, patch domain.DisciplinePatch, now time.Time) (*domain.DisciplineEntry, error) {
	e, err := postgres.UpsertDaily[domain.DisciplineEntry](ctx, postgres.QuerierFromCtx(ctx, r.db), table, ownerID, date, patch.Columns(), now)
	if err != nil {
		return nil, postgres.MapError(err, entity, ownerID)
	}
	return e, nil
}
