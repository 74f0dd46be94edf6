package middleware

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ ownerProvisioner = &ownerProvisionerMock{}

type ownerProvisionerMock struct {
	EnsureOwnerFunc func(ctx context.Context, ownerID uuid.UUID) error

	calls struct {
		EnsureOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockEnsureOwner sync.RWMutex
}

func (mock *ownerProvisionerMock) EnsureOwner(ctx context.Context, ownerID uuid.UUID) error {
	if mock.EnsureOwnerFunc == nil {
		panic("ownerProvisionerMock.EnsureOwnerFunc: method is nil but ownerProvisioner.EnsureOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockEnsureOwner.Lock()
	mock.calls.EnsureOwner = append(mock.calls.EnsureOwner, callInfo)
	mock.lockEnsureOwner.Unlock()
	return mock.EnsureOwnerFunc(ctx, ownerID)
}

func (mock *ownerProvisionerMock) EnsureOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockEnsureOwner.RLock()
	calls := mock.calls.EnsureOwner
	mock.lockEnsureOwner.RUnlock()
	return calls
}
