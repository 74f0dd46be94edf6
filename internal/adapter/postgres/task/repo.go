// Package task implements the Task repository using PostgreSQL.
package task

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

const entity = "Task"

var columns = []string{"id", "owner_id", "date", "title", "category", "completed", "source", "created_at", "updated_at"}

// Repo provides Task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByDate returns the owner's tasks anchored to date, oldest first.
func (r *Repo) ListByDate(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.Task, error) {
	query := postgres.Builder().
		Select(columns...).
		From("tasks").
		Where(squirrel.Eq{"owner_id": ownerID, "date": date}).
		OrderBy("created_at", "id")

	tasks, err := postgres.SelectAll[domain.Task](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, entity, ownerID)
	}
	return tasks, nil
}

// Create inserts t and returns the stored row.
func (r *Repo) Create(ctx context.Context, t domain.Task) (*domain.Task, error) {
	query := postgres.Builder().
		Insert("tasks").
		Columns("id", "owner_id", "date", "title", "category", "completed", "source", "created_at").
		Values(t.ID, t.OwnerID, t.Date, t.Title, string(t.Category), t.Completed, string(t.Source), t.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := postgres.GetOne[domain.Task](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, entity, t.ID)
	}
	return created, nil
}

// SetCompleted updates the completed flag of the owner's task.
func (r *Repo) SetCompleted(ctx context.Context, ownerID, id uuid.UUID, completed bool, now time.Time) (*domain.Task, error) {
	query := postgres.Builder().
		Update("tasks").
		Set("completed", completed).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	t, err := postgres.GetOne[domain.Task](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return t, nil
}

// Delete removes the owner's task and reports whether a row was removed.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.Builder().
		Delete("tasks").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}))
	if err != nil {
		return false, postgres.MapError(err, entity, id)
	}
	return n > 0, nil
}
