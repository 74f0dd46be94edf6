package deadline

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

// MaxTitleLength bounds deadline titles in characters.
const MaxTitleLength = 200

// CreateDeadlineInput holds the parameters for creating a deadline.
type CreateDeadlineInput struct {
	Title      string
	DueDate    string
	Importance *int
}

// Validate checks all fields against today and collects all errors.
func (i CreateDeadlineInput) Validate(today time.Time) error {
	var errs []domain.FieldError
	errs = validateTitle(errs, i.Title)
	errs = validateDueDate(errs, i.DueDate, today)
	errs = validateImportance(errs, i.Importance)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateDeadlineInput holds a partial update. Nil fields are left unchanged.
type UpdateDeadlineInput struct {
	ID         uuid.UUID
	Title      *string
	DueDate    *string
	Importance *int
	Status     *string
}

// Validate checks the present fields against today and collects all errors.
func (i UpdateDeadlineInput) Validate(today time.Time) error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.DueDate != nil {
		errs = validateDueDate(errs, *i.DueDate, today)
	}
	errs = validateImportance(errs, i.Importance)
	if i.Status != nil {
		if _, ok := domain.ParseDeadlineStatus(*i.Status); !ok {
			errs = append(errs, domain.FieldError{
				Field:   "status",
				Message: "must be one of: " + strings.Join(domain.DeadlineStatusValues(), ", "),
				Code:    "invalid_enum",
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// patch converts a validated input into a DeadlinePatch.
func (i UpdateDeadlineInput) patch() domain.DeadlinePatch {
	var p domain.DeadlinePatch
	if i.Title != nil {
		p.Title = domain.Some(strings.TrimSpace(*i.Title))
	}
	if i.DueDate != nil {
		if due, err := domain.ParseDate(*i.DueDate); err == nil {
			p.DueDate = domain.Some(due)
		}
	}
	p.Importance = domain.OptionalFromPtr(i.Importance)
	if i.Status != nil {
		if status, ok := domain.ParseDeadlineStatus(*i.Status); ok {
			p.Status = domain.Some(status)
		}
	}
	return p
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

func validateDueDate(errs []domain.FieldError, raw string, today time.Time) []domain.FieldError {
	if raw == "" {
		return append(errs, domain.FieldError{Field: "dueDate", Message: "required"})
	}
	due, err := domain.ParseDate(raw)
	if err != nil {
		return append(errs, domain.FieldError{Field: "dueDate", Message: "must be a valid date in YYYY-MM-DD format", Code: "invalid_format"})
	}
	if due.Before(today) {
		return append(errs, domain.FieldError{Field: "dueDate", Message: "must not be in the past"})
	}
	return errs
}

func validateImportance(errs []domain.FieldError, importance *int) []domain.FieldError {
	if importance != nil && (*importance < 1 || *importance > 5) {
		return append(errs, domain.FieldError{Field: "importance", Message: "must be between 1 and 5"})
	}
	return errs
}
