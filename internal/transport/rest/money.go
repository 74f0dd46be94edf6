package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/service/money"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
	"github.com/shopspring/decimal"
)

type moneyService interface {
	Summary(ctx context.Context) (*domain.MoneySummary, error)
	CreateIncome(ctx context.Context, input money.CreateIncomeInput) (*domain.IncomeEntry, error)
	ListIncome(ctx context.Context) ([]domain.IncomeEntry, error)
}

// MoneyHandler serves /api/money.
type MoneyHandler struct {
	svc moneyService
	log *slog.Logger
}

// NewMoneyHandler creates a MoneyHandler.
func NewMoneyHandler(svc moneyService, logger *slog.Logger) *MoneyHandler {
	return &MoneyHandler{svc: svc, log: logger.With("handler", "money")}
}

// Amount accepts a JSON number or a numeric string.
type createIncomeRequest struct {
	Date     string          `json:"date"`
	Source   string          `json:"source"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type incomeResponse struct {
	ID        string      `json:"id"`
	Date      string      `json:"date"`
	Source    string      `json:"source"`
	Amount    json.Number `json:"amount"`
	Currency  string      `json:"currency"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt *string     `json:"updatedAt,omitempty"`
}

type moneySummaryResponse struct {
	MonthlyTotal        json.Number      `json:"monthlyTotal"`
	DaysSinceLastIncome int              `json:"daysSinceLastIncome"`
	IncomeEntries       []incomeResponse `json:"incomeEntries"`
}

// Summary handles GET /api/money/summary.
func (h *MoneyHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	envelope.OK(w, http.StatusOK, moneySummaryResponse{
		MonthlyTotal:        amountJSON(summary.MonthlyTotal),
		DaysSinceLastIncome: summary.DaysSinceLastIncome,
		IncomeEntries:       toIncomeResponses(summary.IncomeEntries),
	}, "")
}

// CreateIncome handles POST /api/money/income.
func (h *MoneyHandler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	var req createIncomeRequest
	if !readBody(w, r, &req) {
		return
	}

	entry, err := h.svc.CreateIncome(r.Context(), money.CreateIncomeInput{
		Date:     req.Date,
		Source:   req.Source,
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusCreated, toIncomeResponse(*entry), "Income entry created successfully")
}

// ListIncome handles GET /api/money/income.
func (h *MoneyHandler) ListIncome(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListIncome(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toIncomeResponses(entries), "")
}

// amountJSON renders an amount as a JSON number with two decimals.
func amountJSON(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func toIncomeResponse(e domain.IncomeEntry) incomeResponse {
	return incomeResponse{
		ID:        e.ID.String(),
		Date:      domain.FormatDate(e.Date),
		Source:    e.Source,
		Amount:    amountJSON(e.Amount),
		Currency:  e.Currency,
		CreatedAt: timestamp(e.CreatedAt),
		UpdatedAt: optTimestamp(e.UpdatedAt),
	}
}

func toIncomeResponses(entries []domain.IncomeEntry) []incomeResponse {
	out := make([]incomeResponse, len(entries))
	for i, e := range entries {
		out[i] = toIncomeResponse(e)
	}
	return out
}
