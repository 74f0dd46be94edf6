// Package schedule implements the schedule definition and block instance
// repositories using PostgreSQL.
package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

const (
	blockEntity      = "ScheduleBlock"
	definitionEntity = "ScheduleBlockDefinition"

	timeOrderConstraint = "schedule_block_instances_time_order"
)

var (
	instanceColumns = []string{
		"id", "owner_id", "definition_id", "date", "title", "start_time", "end_time",
		"locked", "source", "created_at", "updated_at",
	}
	definitionColumns = []string{
		"id", "owner_id", "title", "kind", "recurrence", "days_of_week", "min_per_week", "max_per_week",
		"fixed_start_time", "fixed_end_time", "duration_minutes", "preferred_time_tag", "energy",
		"tags", "priority", "enabled", "created_at", "updated_at",
	}
)

// Repo provides schedule persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new schedule repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Block instances
// ---------------------------------------------------------------------------

// ListInstancesByDate returns the owner's blocks on date ordered by start time.
func (r *Repo) ListInstancesByDate(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.ScheduleBlockInstance, error) {
	query := postgres.Builder().
		Select(instanceColumns...).
		From("schedule_block_instances").
		Where(squirrel.Eq{"owner_id": ownerID, "date": date}).
		OrderBy("start_time", "end_time", "id")

	blocks, err := postgres.SelectAll[domain.ScheduleBlockInstance](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, blockEntity, ownerID)
	}
	return blocks, nil
}

// CreateInstance inserts b and returns the stored row.
func (r *Repo) CreateInstance(ctx context.Context, b domain.ScheduleBlockInstance) (*domain.ScheduleBlockInstance, error) {
	query := postgres.Builder().
		Insert("schedule_block_instances").
		Columns("id", "owner_id", "definition_id", "date", "title", "start_time", "end_time", "locked", "source", "created_at").
		Values(b.ID, b.OwnerID, b.DefinitionID, b.Date, b.Title, b.StartTime, b.EndTime, b.Locked, string(b.Source), b.CreatedAt).
		Suffix("RETURNING " + strings.Join(instanceColumns, ", "))

	created, err := postgres.GetOne[domain.ScheduleBlockInstance](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, blockEntity, b.ID)
	}
	return created, nil
}

// UpdateInstance applies the present fields of patch to the owner's block.
// An empty patch only stamps updated_at.
func (r *Repo) UpdateInstance(ctx context.Context, ownerID, id uuid.UUID, patch domain.ScheduleBlockPatch, now time.Time) (*domain.ScheduleBlockInstance, error) {
	query := postgres.Builder().
		Update("schedule_block_instances").
		SetMap(patch.Columns()).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + strings.Join(instanceColumns, ", "))

	b, err := postgres.GetOne[domain.ScheduleBlockInstance](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		if postgres.ViolatesConstraint(err, timeOrderConstraint) {
			return nil, domain.NewValidationError("endTime", "must be after startTime")
		}
		return nil, postgres.MapError(err, blockEntity, id)
	}
	return b, nil
}

// DeleteInstance removes the owner's block and reports whether a row was removed.
func (r *Repo) DeleteInstance(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.Builder().
		Delete("schedule_block_instances").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}))
	if err != nil {
		return false, postgres.MapError(err, blockEntity, id)
	}
	return n > 0, nil
}

// ---------------------------------------------------------------------------
// Definitions
// ---------------------------------------------------------------------------

// CreateDefinition inserts d and returns the stored row.
func (r *Repo) CreateDefinition(ctx context.Context, d domain.ScheduleBlockDefinition) (*domain.ScheduleBlockDefinition, error) {
	var timeTag *string
	if d.PreferredTimeTag != nil {
		s := string(*d.PreferredTimeTag)
		timeTag = &s
	}
	daysOfWeek := d.DaysOfWeek
	if daysOfWeek == nil {
		daysOfWeek = []int{}
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}

	query := postgres.Builder().
		Insert("schedule_block_definitions").
		Columns(
			"id", "owner_id", "title", "kind", "recurrence", "days_of_week", "min_per_week", "max_per_week",
			"fixed_start_time", "fixed_end_time", "duration_minutes", "preferred_time_tag", "energy",
			"tags", "priority", "enabled", "created_at",
		).
		Values(
			d.ID, d.OwnerID, d.Title, string(d.Kind), string(d.Recurrence), daysOfWeek, d.MinPerWeek, d.MaxPerWeek,
			d.FixedStartTime, d.FixedEndTime, d.DurationMinutes, timeTag, string(d.Energy),
			tags, d.Priority, d.Enabled, d.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(definitionColumns, ", "))

	created, err := postgres.GetOne[domain.ScheduleBlockDefinition](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, definitionEntity, d.ID)
	}
	return created, nil
}

// ListEnabledDefinitions returns the owner's enabled definitions, highest priority first.
func (r *Repo) ListEnabledDefinitions(ctx context.Context, ownerID uuid.UUID) ([]domain.ScheduleBlockDefinition, error) {
	query := postgres.Builder().
		Select(definitionColumns...).
		From("schedule_block_definitions").
		Where(squirrel.Eq{"owner_id": ownerID, "enabled": true}).
		OrderBy("priority DESC", "title", "id")

	defs, err := postgres.SelectAll[domain.ScheduleBlockDefinition](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, definitionEntity, ownerID)
	}
	return defs, nil
}
