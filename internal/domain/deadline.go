package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultImportance is applied when a deadline is created without one.
const DefaultImportance = 3

// Deadline is a long-lived goal tracked until completed or deleted.
type Deadline struct {
	ID         uuid.UUID      `db:"id"`
	OwnerID    uuid.UUID      `db:"owner_id"`
	Title      string         `db:"title"`
	DueDate    time.Time      `db:"due_date"`
	Importance int            `db:"importance"`
	Status     DeadlineStatus `db:"status"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  *time.Time     `db:"updated_at"`
}

// DaysLeft is always computed against the caller's today, never stored.
func (d Deadline) DaysLeft(today time.Time) int {
	return DaysBetween(today, d.DueDate)
}

// DeadlinePatch is a partial update of a deadline.
type DeadlinePatch struct {
	Title      Optional[string]
	DueDate    Optional[time.Time]
	Importance Optional[int]
	Status     Optional[DeadlineStatus]
}

// IsEmpty reports whether no field is present.
func (p DeadlinePatch) IsEmpty() bool {
	return !p.Title.IsSet() && !p.DueDate.IsSet() && !p.Importance.IsSet() && !p.Status.IsSet()
}

// Columns returns the present fields keyed by column name.
func (p DeadlinePatch) Columns() map[string]any {
	cols := make(map[string]any, 4)
	setIfPresent(cols, "title", p.Title)
	setIfPresent(cols, "due_date", p.DueDate)
	setIfPresent(cols, "importance", p.Importance)
	if s, ok := p.Status.Get(); ok {
		cols["status"] = string(s)
	}
	return cols
}

// DeadlineStatusSnapshot is a point-in-time record of a deadline's status.
type DeadlineStatusSnapshot struct {
	ID         uuid.UUID      `db:"id"`
	DeadlineID uuid.UUID      `db:"deadline_id"`
	OwnerID    uuid.UUID      `db:"owner_id"`
	Date       time.Time      `db:"date"`
	Status     DeadlineStatus `db:"status"`
	DaysLeft   int            `db:"days_left"`
	CreatedAt  time.Time      `db:"created_at"`
}
