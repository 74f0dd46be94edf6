package diet

import (
	"unicode/utf8"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

const (
	// MaxNoteLength bounds the free-text note in characters.
	MaxNoteLength = 1000
	// MaxPhotoURLLength bounds the photo reference.
	MaxPhotoURLLength = 2048
)

// UpdateTodayInput holds a partial update of today's entry.
type UpdateTodayInput struct {
	Patch domain.DietPatch
}

// Validate checks all fields and collects all errors.
func (i UpdateTodayInput) Validate() error {
	var errs []domain.FieldError

	if note, ok := i.Patch.Note.Get(); ok && utf8.RuneCountInString(note) > MaxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 1000 characters"})
	}
	if url, ok := i.Patch.PhotoURL.Get(); ok && len(url) > MaxPhotoURLLength {
		errs = append(errs, domain.FieldError{Field: "photoUrl", Message: "max 2048 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
