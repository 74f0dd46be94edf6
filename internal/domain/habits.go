package domain

import (
	"time"

	"github.com/google/uuid"
)

// DisciplineEntry holds the daily habit checklist. One per owner per day.
type DisciplineEntry struct {
	ID         uuid.UUID  `db:"id"`
	OwnerID    uuid.UUID  `db:"owner_id"`
	Date       time.Time  `db:"date"`
	Gym        bool       `db:"gym"`
	Walk       bool       `db:"walk"`
	Cooked     bool       `db:"cooked"`
	Diet       bool       `db:"diet"`
	Meditation bool       `db:"meditation"`
	Water      bool       `db:"water"`
	Note       string     `db:"note"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
}

// DisciplinePatch is a partial update of today's DisciplineEntry.
type DisciplinePatch struct {
	Gym        Optional[bool]
	Walk       Optional[bool]
	Cooked     Optional[bool]
	Diet       Optional[bool]
	Meditation Optional[bool]
	Water      Optional[bool]
	Note       Optional[string]
}

// Columns returns the present fields keyed by column name.
func (p DisciplinePatch) Columns() map[string]any {
	cols := make(map[string]any, 7)
	setIfPresent(cols, "gym", p.Gym)
	setIfPresent(cols, "walk", p.Walk)
	setIfPresent(cols, "cooked", p.Cooked)
	setIfPresent(cols, "diet", p.Diet)
	setIfPresent(cols, "meditation", p.Meditation)
	setIfPresent(cols, "water", p.Water)
	setIfPresent(cols, "note", p.Note)
	return cols
}

// DietEntry records daily diet compliance. One per owner per day.
type DietEntry struct {
	ID        uuid.UUID  `db:"id"`
	OwnerID   uuid.UUID  `db:"owner_id"`
	Date      time.Time  `db:"date"`
	Compliant bool       `db:"compliant"`
	PhotoURL  string     `db:"photo_url"`
	Note      string     `db:"note"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// DietPatch is a partial update of today's DietEntry.
type DietPatch struct {
	Compliant Optional[bool]
	PhotoURL  Optional[string]
	Note      Optional[string]
}

// Columns returns the present fields keyed by column name.
func (p DietPatch) Columns() map[string]any {
	cols := make(map[string]any, 3)
	setIfPresent(cols, "compliant", p.Compliant)
	setIfPresent(cols, "photo_url", p.PhotoURL)
	setIfPresent(cols, "note", p.Note)
	return cols
}

func setIfPresent[T any](cols map[string]any, name string, o Optional[T]) {
	if v, ok := o.Get(); ok {
		cols[name] = v
	}
}
