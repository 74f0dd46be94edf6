package betteritem

import (
	"context"
	"fmt"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// ListToday returns the caller's better-items for the current UTC day.
func (s *Service) ListToday(ctx context.Context) ([]domain.BetterItem, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.items.ListByDate(ctx, ownerID, domain.DateOf(s.clock()))
	if err != nil {
		return nil, fmt.Errorf("list better items: %w", err)
	}
	return items, nil
}
