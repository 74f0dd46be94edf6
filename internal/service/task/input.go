package task

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

// MaxTitleLength bounds task titles in characters.
const MaxTitleLength = 200

// CreateTaskInput holds the parameters for creating a task.
type CreateTaskInput struct {
	Title    string
	Category string
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

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
