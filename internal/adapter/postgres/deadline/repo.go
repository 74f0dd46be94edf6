// Package deadline implements the Deadline repository and its status
// snapshots using PostgreSQL.
package deadline

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

const entity = "Deadline"

var columns = []string{"id", "owner_id", "title", "due_date", "importance", "status", "created_at", "updated_at"}

var active = squirrel.NotEq{"status": string(domain.DeadlineStatusCompleted)}

// Repo provides Deadline persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deadline repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListActive returns the owner's non-completed deadlines by due date ascending.
func (r *Repo) ListActive(ctx context.Context, ownerID uuid.UUID) ([]domain.Deadline, error) {
	query := postgres.Builder().
		Select(columns...).
		From("deadlines").
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(active).
		OrderBy("due_date", "id")

	return r.list(ctx, ownerID, query)
}

// ListActiveDueBetween returns the owner's non-completed deadlines with
// from <= due_date <= to, earliest first.
func (r *Repo) ListActiveDueBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.Deadline, error) {
	query := postgres.Builder().
		Select(columns...).
		From("deadlines").
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(active).
		Where(squirrel.GtOrEq{"due_date": from}).
		Where(squirrel.LtOrEq{"due_date": to}).
		OrderBy("due_date", "id")

	return r.list(ctx, ownerID, query)
}

// Create inserts d and returns the stored row.
func (r *Repo) Create(ctx context.Context, d domain.Deadline) (*domain.Deadline, error) {
	query := postgres.Builder().
		Insert("deadlines").
		Columns("id", "owner_id", "title", "due_date", "importance", "status", "created_at").
		Values(d.ID, d.OwnerID, d.Title, d.DueDate, d.Importance, string(d.Status), d.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := postgres.GetOne[domain.Deadline](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, entity, d.ID)
	}
	return created, nil
}

// Update applies the present fields of patch to the owner's deadline.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, patch domain.DeadlinePatch, now time.Time) (*domain.Deadline, error) {
	query := postgres.Builder().
		Update("deadlines").
		SetMap(patch.Columns()).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	d, err := postgres.GetOne[domain.Deadline](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// Delete removes the owner's deadline and reports whether a row was removed.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.Builder().
		Delete("deadlines").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}))
	if err != nil {
		return false, postgres.MapError(err, entity, id)
	}
	return n > 0, nil
}

// ---------------------------------------------------------------------------
// Status snapshots
// ---------------------------------------------------------------------------

// ListAllActive returns every owner's non-completed deadlines. It is only
// used by batch jobs that run outside a request.
func (r *Repo) ListAllActive(ctx context.Context) ([]domain.Deadline, error) {
	query := postgres.Builder().
		Select(columns...).
		From("deadlines").
		Where(active).
		OrderBy("owner_id", "due_date", "id")

	return r.list(ctx, uuid.Nil, query)
}

// CreateSnapshot records s unless a snapshot for the same deadline and date
// already exists. It reports whether a row was inserted.
func (r *Repo) CreateSnapshot(ctx context.Context, s domain.DeadlineStatusSnapshot) (bool, error) {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.Builder().
		Insert("deadline_status_snapshots").
		Columns("id", "deadline_id", "owner_id", "date", "status", "days_left", "created_at").
		Values(s.ID, s.DeadlineID, s.OwnerID, s.Date, string(s.Status), s.DaysLeft, s.CreatedAt).
		Suffix("ON CONFLICT (deadline_id, date) DO NOTHING"))
	if err != nil {
		return false, postgres.MapError(err, "DeadlineStatusSnapshot", s.DeadlineID)
	}
	return n > 0, nil
}

// ListSnapshots returns the snapshots of one deadline, oldest first.
func (r *Repo) ListSnapshots(ctx context.Context, ownerID, deadlineID uuid.UUID) ([]domain.DeadlineStatusSnapshot, error) {
	query := postgres.Builder().
		Select("id", "deadline_id", "owner_id", "date", "status", "days_left", "created_at").
		From("deadline_status_snapshots").
		Where(squirrel.Eq{"owner_id": ownerID, "deadline_id": deadlineID}).
		OrderBy("date")

	snaps, err := postgres.SelectAll[domain.DeadlineStatusSnapshot](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "DeadlineStatusSnapshot", deadlineID)
	}
	return snaps, nil
}

func (r *Repo) list(ctx context.Context, ownerID uuid.UUID, query squirrel.SelectBuilder) ([]domain.Deadline, error) {
	deadlines, err := postgres.SelectAll[domain.Deadline](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, entity, ownerID)
	}
	return deadlines, nil
}
