// Package money implements the income ledger and its monthly summary.
package money

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

type incomeRepo interface {
	Create(ctx context.Context, e domain.IncomeEntry) (*domain.IncomeEntry, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.IncomeEntry, error)
	ListBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.IncomeEntry, error)
	LatestDate(ctx context.Context, ownerID uuid.UUID) (*time.Time, error)
}

// Service provides income operations scoped to the caller's owner.
type Service struct {
	income incomeRepo
	log    *slog.Logger
	clock  func() time.Time
}

// NewService creates a new Money service.
func NewService(log *slog.Logger, income incomeRepo) *Service {
	return &Service{
		income: income,
		log:    log.With("service", "money"),
		clock:  time.Now,
	}
}

// Summary totals the current month's income and reports the days since the
// most recent entry of any month (0 when there is none).
func (s *Service) Summary(ctx context.Context) (*domain.MoneySummary, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	today := domain.DateOf(s.clock())
	first, last := domain.MonthBounds(today)

	entries, err := s.income.ListBetween(ctx, ownerID, first, last)
	if err != nil {
		return nil, fmt.Errorf("list month income: %w", err)
	}

	latest, err := s.income.LatestDate(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("latest income date: %w", err)
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}

	daysSince := 0
	if latest != nil {
		daysSince = domain.DaysBetween(*latest, today)
	}

	return &domain.MoneySummary{
		MonthlyTotal:        total,
		DaysSinceLastIncome: daysSince,
		IncomeEntries:       entries,
	}, nil
}

// CreateIncome appends an entry to the caller's ledger.
func (s *Service) CreateIncome(ctx context.Context, input CreateIncomeInput) (*domain.IncomeEntry, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	date, _ := domain.ParseDate(input.Date)
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	e, err := s.income.Create(ctx, domain.IncomeEntry{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Date:      date,
		Source:    strings.TrimSpace(input.Source),
		Amount:    input.Amount.Round(2),
		Currency:  currency,
		CreatedAt: s.clock().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create income: %w", err)
	}

	s.log.InfoContext(ctx, "income recorded",
		slog.String("owner_id", ownerID.String()),
		slog.String("income_id", e.ID.String()),
		slog.String("amount", e.Amount.StringFixed(2)),
		slog.String("currency", e.Currency),
	)

	return e, nil
}

// ListIncome returns the caller's whole ledger, newest date first.
func (s *Service) ListIncome(ctx context.Context) ([]domain.IncomeEntry, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.income.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list income: %w", err)
	}
	return entries, nil
}
