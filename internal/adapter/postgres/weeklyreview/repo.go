// Package weeklyreview implements the WeeklyReview repository using PostgreSQL.
package weeklyreview

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

const entity = "WeeklyReview"

var columns = []string{
	"id", "owner_id", "week_id", "ai_summary", "shipped", "improved", "avoided", "next_focus",
	"completed", "completed_at", "created_at", "updated_at",
}

// Repo provides WeeklyReview persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new weekly review repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Ensure returns the owner's review for weekID, creating an empty one on first access.
func (r *Repo) Ensure(ctx context.Context, ownerID uuid.UUID, weekID string, now time.Time) (*domain.WeeklyReview, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder().
		Insert("weekly_reviews").
		Columns("id", "owner_id", "week_id", "created_at").
		Values(uuid.New(), ownerID, weekID, now).
		Suffix("ON CONFLICT (owner_id, week_id) DO NOTHING")

	if _, err := postgres.ExecAffected(ctx, q, insert); err != nil {
		return nil, postgres.MapError(err, entity, ownerID)
	}

	query := postgres.Builder().
		Select(columns...).
		From("weekly_reviews").
		Where(squirrel.Eq{"owner_id": ownerID, "week_id": weekID})

	review, err := postgres.GetOne[domain.WeeklyReview](ctx, q, query)
	if err != nil {
		return nil, postgres.MapError(err, entity, ownerID)
	}
	return review, nil
}

// Submit writes the reflection onto the owner's review for weekID in one
// statement, creating the review if needed, and marks it completed at now.
func (r *Repo) Submit(ctx context.Context, ownerID uuid.UUID, weekID string, refl domain.WeeklyReflection, now time.Time) (*domain.WeeklyReview, error) {
	query := postgres.Builder().
		Insert("weekly_reviews").
		Columns("id", "owner_id", "week_id", "shipped", "improved", "avoided", "next_focus",
			"completed", "completed_at", "created_at", "updated_at").
		Values(uuid.New(), ownerID, weekID, refl.Shipped, refl.Improved, refl.Avoided, refl.NextFocus,
			true, now, now, now).
		Suffix("ON CONFLICT (owner_id, week_id) DO UPDATE SET " +
			"shipped = EXCLUDED.shipped, improved = EXCLUDED.improved, " +
			"avoided = EXCLUDED.avoided, next_focus = EXCLUDED.next_focus, " +
			"completed = true, completed_at = EXCLUDED.completed_at, updated_at = EXCLUDED.updated_at " +
			"RETURNING " + strings.Join(columns, ", "))

	review, err := postgres.GetOne[domain.WeeklyReview](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, entity, ownerID)
	}
	return review, nil
}
