package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/service/weeklyreview"
)

var _ weeklyReviewService = &weeklyReviewServiceMock{}

type weeklyReviewServiceMock struct {
	CurrentFunc func(ctx context.Context) (*domain.WeeklyReview, error)
	SubmitFunc  func(ctx context.Context, input weeklyreview.SubmitInput) (*domain.WeeklyReview, error)

	calls struct {
		Current []struct {
			Ctx context.Context
		}
		Submit []struct {
			Ctx   context.Context
			Input weeklyreview.SubmitInput
		}
	}
	lockCurrent sync.RWMutex
	lockSubmit  sync.RWMutex
}

func (mock *weeklyReviewServiceMock) Current(ctx context.Context) (*domain.WeeklyReview, error) {
	if mock.CurrentFunc == nil {
		panic("weeklyReviewServiceMock.CurrentFunc: method is nil but weeklyReviewService.Current was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCurrent.Lock()
	mock.calls.Current = append(mock.calls.Current, callInfo)
	mock.lockCurrent.Unlock()
	return mock.CurrentFunc(ctx)
}

func (mock *weeklyReviewServiceMock) CurrentCalls() []struct {
	Ctx context.Context
} {
	mock.lockCurrent.RLock()
	calls := mock.calls.Current
	mock.lockCurrent.RUnlock()
	return calls
}

func (mock *weeklyReviewServiceMock) Submit(ctx context.Context, input weeklyreview.SubmitInput) (*domain.WeeklyReview, error) {
	if mock.SubmitFunc == nil {
		panic("weeklyReviewServiceMock.SubmitFunc: method is nil but weeklyReviewService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input weeklyreview.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *weeklyReviewServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input weeklyreview.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
