package money

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

// MaxSourceLength bounds the income source in characters.
const MaxSourceLength = 200

var currencyPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// CreateIncomeInput holds the parameters for recording income.
type CreateIncomeInput struct {
	Date     string
	Source   string
	Amount   decimal.Decimal
	Currency string
}

// Validate checks all fields and collects all errors.
func (i CreateIncomeInput) Validate() error {
	var errs []domain.FieldError

	if i.Date == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if _, err := domain.ParseDate(i.Date); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format", Code: "invalid_format"})
	}

	source := strings.TrimSpace(i.Source)
	if source == "" {
		errs = append(errs, domain.FieldError{Field: "source", Message: "required"})
	} else if utf8.RuneCountInString(source) > MaxSourceLength {
		errs = append(errs, domain.FieldError{Field: "source", Message: "max 200 characters"})
	}

	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be greater than 0"})
	}

	if c := strings.TrimSpace(i.Currency); c != "" && !currencyPattern.MatchString(c) {
		errs = append(errs, domain.FieldError{Field: "currency", Message: "must be a 3-letter currency code", Code: "invalid_format"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
