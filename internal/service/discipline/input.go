package discipline

import (
	"unicode/utf8"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

// MaxNoteLength bounds the free-text note in characters.
const MaxNoteLength = 1000

// UpdateTodayInput holds a partial update of today's entry.
type UpdateTodayInput struct {
	Patch domain.DisciplinePatch
}

// Validate checks all fields and collects all errors.
func (i UpdateTodayInput) Validate() error {
	if note, ok := i.Patch.Note.Get(); ok && utf8.RuneCountInString(note) > MaxNoteLength {
		return domain.NewValidationError("note", "max 1000 characters")
	}
	return nil
}
