package weeklyreview

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

// MaxAnswerLength bounds each reflection answer in characters.
const MaxAnswerLength = 1000

// SubmitInput holds the four reflection answers.
type SubmitInput struct {
	Shipped   string
	Improved  string
	Avoided   string
	NextFocus string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	for _, f := range []struct {
		name  string
		value string
	}{
		{"shipped", i.Shipped},
		{"improved", i.Improved},
		{"avoided", i.Avoided},
		{"nextFocus", i.NextFocus},
	} {
		v := strings.TrimSpace(f.value)
		switch {
		case v == "":
			errs = append(errs, domain.FieldError{Field: f.name, Message: "required"})
		case utf8.RuneCountInString(v) > MaxAnswerLength:
			errs = append(errs, domain.FieldError{Field: f.name, Message: "max 1000 characters"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
