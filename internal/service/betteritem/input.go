package betteritem

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

// MaxTitleLength bounds item titles in characters.
const MaxTitleLength = 200

// CreateItemInput holds the parameters for creating a better-item.
type CreateItemInput struct {
	Title    string
	Category string
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	errs := validateTitle(nil, i.Title)

	if _, ok := domain.ParseCategory(i.Category); !ok {
		errs = append(errs, domain.FieldError{
			Field:   "category",
			Message: "must be one of: " + strings.Join(domain.CategoryValues(), ", "),
			Code:    "invalid_enum",
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EditItemInput holds the parameters for renaming a better-item.
type EditItemInput struct {
	ID    uuid.UUID
	Title string
}

// Validate checks all fields and collects all errors.
func (i EditItemInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = validateTitle(errs, i.Title)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateTitle(errs []domain.FieldError, raw string) []domain.FieldError {
	title := strings.TrimSpace(raw)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}
