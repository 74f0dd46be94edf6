package deadline

import (
	"context"
	"fmt"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// List returns the caller's non-completed deadlines by due date, each with
// days-left computed against today.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	deadlines, err := s.deadlines.ListActive(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list deadlines: %w", err)
	}

	today := s.today()
	items := make([]Item, len(deadlines))
	for i, d := range deadlines {
		items[i] = withDaysLeft(d, today)
	}
	return items, nil
}
