// Package day implements the Day marker repository using PostgreSQL.
package day

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

var table = postgres.DailyTable{
	Name:    "days",
	Columns: []string{"id", "owner_id", "date", "focus_category", "created_at", "updated_at"},
}

// Repo provides Day persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new day repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Ensure returns the owner's Day row for date, creating it on first access.
func (r *Repo) Ensure(ctx context.Context, ownerID uuid.UUID, date, now time.Time) (*domain.Day, error) {
	d, err := postgres.EnsureDaily[domain.Day](ctx, postgres.QuerierFromCtx(ctx, r.db), table, ownerID, date, now)
	if err != nil {
		return nil, postgres.MapError(err, "Day", ownerID)
	}
	return d, nil
}
