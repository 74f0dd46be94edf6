package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a user-created todo anchored to one day.
type Task struct {
	ID        uuid.UUID  `db:"id"`
	OwnerID   uuid.UUID  `db:"owner_id"`
	Date      time.Time  `db:"date"`
	Title     string     `db:"title"`
	Category  Category   `db:"category"`
	Completed bool       `db:"completed"`
	Source    Source     `db:"source"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// BetterItem is a "what makes today better" focus item.
type BetterItem struct {
	ID        uuid.UUID  `db:"id"`
	OwnerID   uuid.UUID  `db:"owner_id"`
	Date      time.Time  `db:"date"`
	Title     string     `db:"title"`
	Category  Category   `db:"category"`
	Completed bool       `db:"completed"`
	Source    Source     `db:"source"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// Day marks that an owner has opened a calendar day.
type Day struct {
	ID            uuid.UUID  `db:"id"`
	OwnerID       uuid.UUID  `db:"owner_id"`
	Date          time.Time  `db:"date"`
	FocusCategory *Category  `db:"focus_category"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
}
