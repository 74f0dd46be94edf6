package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner every row is scoped to.
type User struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	Timezone  string     `db:"timezone"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// DefaultTimezone is used for owners created without an explicit zone.
const DefaultTimezone = "UTC"
