// Package diet implements the DietEntry repository using PostgreSQL.
package diet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

const entity = "DietEntry"

var table = postgres.DailyTable{
	Name:    "diet_entries",
	Columns: []string{"id", "owner_id", "date", "compliant", "photo_url", "note", "created_at", "updated_at"},
}

// Repo provides DietEntry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new diet repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Ensure returns the owner's entry for date, creating a default one on first access.
func (r *Repo) Ensure(ctx context.Context, ownerID uuid.UUID, date, now time.Time) (*domain.DietEntry, error) {
	e, err := postgres.EnsureDaily[domain.DietEntry](ctx, postgres.QuerierFromCtx(ctx, r.db), table, ownerID, date, now)
	if err != nil {
		return nil, postgres.MapError(err, entity, ownerID)
	}
	return e, nil
}

// Upsert applies patch to the owner's entry for date, creating it if needed.
func (r *Repo) Upsert(ctx context.Context, ownerID uuid.UUID, date time.Time, patch domain.DietPatch, now time.Time) (*domain.DietEntry, error) {
	e, err := postgres.UpsertDaily[domain.DietEntry](ctx, postgres.QuerierFromCtx(ctx, r.db), table, ownerID, date, patch.Columns(), now)
	if err != nil {
		return nil, postgres.MapError(err, entity, ownerID)
	}
	return e, nil
}
