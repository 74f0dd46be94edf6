package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/service/money"
)

var _ moneyService = &moneyServiceMock{}

type moneyServiceMock struct {
	SummaryFunc      func(ctx context.Context) (*domain.MoneySummary, error)
	CreateIncomeFunc func(ctx context.Context, input money.CreateIncomeInput) (*domain.IncomeEntry, error)
	ListIncomeFunc   func(ctx context.Context) ([]domain.IncomeEntry, error)

	calls struct {
		Summary []struct {
			Ctx context.Context
		}
		CreateIncome []struct {
			Ctx   context.Context
			Input money.CreateIncomeInput
		}
		ListIncome []struct {
			Ctx context.Context
		}
	}
	lockSummary      sync.RWMutex
	lockCreateIncome sync.RWMutex
	lockListIncome   sync.RWMutex
}

func (mock *moneyServiceMock) Summary(ctx context.Context) (*domain.MoneySummary, error) {
	if mock.SummaryFunc == nil {
		panic("moneyServiceMock.SummaryFunc: method is nil but moneyService.Summary was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx)
}

func (mock *moneyServiceMock) SummaryCalls() []struct {
	Ctx context.Context
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}

func (mock *moneyServiceMock) CreateIncome(ctx context.Context, input money.CreateIncomeInput) (*domain.IncomeEntry, error) {
	if mock.CreateIncomeFunc == nil {
		panic("moneyServiceMock.CreateIncomeFunc: method is nil but moneyService.CreateIncome was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input money.CreateIncomeInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateIncome.Lock()
	mock.calls.CreateIncome = append(mock.calls.CreateIncome, callInfo)
	mock.lockCreateIncome.Unlock()
	return mock.CreateIncomeFunc(ctx, input)
}

func (mock *moneyServiceMock) CreateIncomeCalls() []struct {
	Ctx   context.Context
	Input money.CreateIncomeInput
} {
	mock.lockCreateIncome.RLock()
	calls := mock.calls.CreateIncome
	mock.lockCreateIncome.RUnlock()
	return calls
}

func (mock *moneyServiceMock) ListIncome(ctx context.Context) ([]domain.IncomeEntry, error) {
	if mock.ListIncomeFunc == nil {
		panic("moneyServiceMock.ListIncomeFunc: method is nil but moneyService.ListIncome was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListIncome.Lock()
	mock.calls.ListIncome = append(mock.calls.ListIncome, callInfo)
	mock.lockListIncome.Unlock()
	return mock.ListIncomeFunc(ctx)
}

func (mock *moneyServiceMock) ListIncomeCalls() []struct {
	Ctx context.Context
} {
	mock.lockListIncome.RLock()
	calls := mock.calls.ListIncome
	mock.lockListIncome.RUnlock()
	return calls
}
