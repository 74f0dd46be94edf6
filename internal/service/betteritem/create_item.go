package betteritem

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// Create adds an open, user-sourced better-item to today.
func (s *Service) Create(ctx context.Context, input CreateItemInput) (*domain.BetterItem, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	category, _ := domain.ParseCategory(input.Category)
	now := s.clock().UTC()

	item, err := s.items.Create(ctx, domain.BetterItem{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Date:      domain.DateOf(now),
		Title:     strings.TrimSpace(input.Title),
		Category:  category,
		Source:    domain.SourceUser,
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create better item: %w", err)
	}

	s.log.InfoContext(ctx, "better item created",
		slog.String("owner_id", ownerID.String()),
		slog.String("item_id", item.ID.String()),
	)

	return item, nil
}
