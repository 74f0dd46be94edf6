// Package weeklyreview implements the once-per-ISO-week reflection.
package weeklyreview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

type reviewRepo interface {
	Ensure(ctx context.Context, ownerID uuid.UUID, weekID string, now time.Time) (*domain.WeeklyReview, error)
	Submit(ctx context.Context, ownerID uuid.UUID, weekID string, refl domain.WeeklyReflection, now time.Time) (*domain.WeeklyReview, error)
}

// Service provides weekly review operations scoped to the caller's owner.
type Service struct {
	reviews reviewRepo
	log     *slog.Logger
	clock   func() time.Time
}

// NewService creates a new WeeklyReview service.
func NewService(log *slog.Logger, reviews reviewRepo) *Service {
	return &Service{
		reviews: reviews,
		log:     log.With("service", "weeklyreview"),
		clock:   time.Now,
	}
}

// Current returns this week's review, creating an empty one on first access.
func (s *Service) Current(ctx context.Context) (*domain.WeeklyReview, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock().UTC()
	review, err := s.reviews.Ensure(ctx, ownerID, domain.WeekID(now), now)
	if err != nil {
		return nil, fmt.Errorf("get weekly review: %w", err)
	}
	return review, nil
}

// Submit stores the four reflections for this week and marks it completed.
// Re-submitting overwrites the answers and moves completedAt forward.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.WeeklyReview, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	weekID := domain.WeekID(now)
	review, err := s.reviews.Submit(ctx, ownerID, weekID, domain.WeeklyReflection{
		Shipped:   strings.TrimSpace(input.Shipped),
		Improved:  strings.TrimSpace(input.Improved),
		Avoided:   strings.TrimSpace(input.Avoided),
		NextFocus: strings.TrimSpace(input.NextFocus),
	}, now)
	if err != nil {
		return nil, fmt.Errorf("submit weekly review: %w", err)
	}

	s.log.InfoContext(ctx, "weekly review submitted",
		slog.String("owner_id", ownerID.String()),
		slog.String("week_id", weekID),
	)

	return review, nil
}
