package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when income is recorded without a currency.
const DefaultCurrency = "EUR"

// IncomeEntry is an append-only ledger row.
type IncomeEntry struct {
	ID        uuid.UUID       `db:"id"`
	OwnerID   uuid.UUID       `db:"owner_id"`
	Date      time.Time       `db:"date"`
	Source    string          `db:"source"`
	Amount    decimal.Decimal `db:"amount"`
	Currency  string          `db:"currency"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt *time.Time      `db:"updated_at"`
}

// MoneySummary is the current month's income overview.
type MoneySummary struct {
	MonthlyTotal        decimal.Decimal
	DaysSinceLastIncome int
	IncomeEntries       []IncomeEntry
}
