package domain

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyReview is the reflective review for one ISO week.
type WeeklyReview struct {
	ID          uuid.UUID  `db:"id"`
	OwnerID     uuid.UUID  `db:"owner_id"`
	WeekID      string     `db:"week_id"`
	AISummary   string     `db:"ai_summary"`
	Shipped     string     `db:"shipped"`
	Improved    string     `db:"improved"`
	Avoided     string     `db:"avoided"`
	NextFocus   string     `db:"next_focus"`
	Completed   bool       `db:"completed"`
	CompletedAt *time.Time `db:"completed_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// WeeklyReflection holds the four free-text answers of a review.
type WeeklyReflection struct {
	Shipped   string
	Improved  string
	Avoided   string
	NextFocus string
}
