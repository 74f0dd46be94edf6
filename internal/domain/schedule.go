package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleBlockDefinition is a template for generating day blocks.
type ScheduleBlockDefinition struct {
	ID               uuid.UUID  `db:"id"`
	OwnerID          uuid.UUID  `db:"owner_id"`
	Title            string     `db:"title"`
	Kind             BlockKind  `db:"kind"`
	Recurrence       Recurrence `db:"recurrence"`
	DaysOfWeek       []int      `db:"days_of_week"`
	MinPerWeek       *int       `db:"min_per_week"`
	MaxPerWeek       *int       `db:"max_per_week"`
	FixedStartTime   *string    `db:"fixed_start_time"`
	FixedEndTime     *string    `db:"fixed_end_time"`
	DurationMinutes  int        `db:"duration_minutes"`
	PreferredTimeTag *TimeTag   `db:"preferred_time_tag"`
	Energy           Energy     `db:"energy"`
	Tags             []string   `db:"tags"`
	Priority         int        `db:"priority"`
	Enabled          bool       `db:"enabled"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
}

// ScheduleBlockInstance is a concrete time-boxed block on a specific day.
type ScheduleBlockInstance struct {
	ID           uuid.UUID  `db:"id"`
	OwnerID      uuid.UUID  `db:"owner_id"`
	DefinitionID *uuid.UUID `db:"definition_id"`
	Date         time.Time  `db:"date"`
	Title        string     `db:"title"`
	StartTime    string     `db:"start_time"`
	EndTime      string     `db:"end_time"`
	Locked       bool       `db:"locked"`
	Source       Source     `db:"source"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// Contains reports whether clock falls in the block's [start, end) range.
// Blocks with unparsable times never match.
func (b ScheduleBlockInstance) Contains(clock time.Duration) bool {
	start, err := ParseClock(b.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseClock(b.EndTime)
	if err != nil {
		return false
	}
	return clock >= start && clock < end
}

// ScheduleBlockPatch is a partial update of a block instance.
type ScheduleBlockPatch struct {
	Title     Optional[string]
	StartTime Optional[string]
	EndTime   Optional[string]
}

// IsEmpty reports whether no field is present.
func (p ScheduleBlockPatch) IsEmpty() bool {
	return !p.Title.IsSet() && !p.StartTime.IsSet() && !p.EndTime.IsSet()
}

// Columns returns the present fields keyed by column name.
func (p ScheduleBlockPatch) Columns() map[string]any {
	cols := make(map[string]any, 3)
	setIfPresent(cols, "title", p.Title)
	setIfPresent(cols, "start_time", p.StartTime)
	setIfPresent(cols, "end_time", p.EndTime)
	return cols
}
