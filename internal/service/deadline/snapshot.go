package deadline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

// SnapshotResult summarizes one RecordSnapshots run.
type SnapshotResult struct {
	Active   int
	Recorded int
	Skipped  int
}

// RecordSnapshots stores today's status and days-left for every active
// deadline of every owner. Deadlines already snapshotted today are skipped,
// so the job can be re-run safely.
func (s *Service) RecordSnapshots(ctx context.Context) (SnapshotResult, error) {
	now := s.clock().UTC()
	today := domain.DateOf(now)

	deadlines, err := s.deadlines.ListAllActive(ctx)
	if err != nil {
		return SnapshotResult{}, fmt.Errorf("list active deadlines: %w", err)
	}

	res := SnapshotResult{Active: len(deadlines)}
	for _, d := range deadlines {
		inserted, err := s.deadlines.CreateSnapshot(ctx, domain.DeadlineStatusSnapshot{
			ID:         uuid.New(),
			DeadlineID: d.ID,
			OwnerID:    d.OwnerID,
			Date:       today,
			Status:     d.Status,
			DaysLeft:   d.DaysLeft(today),
			CreatedAt:  now,
		})
		if err != nil {
			return res, fmt.Errorf("snapshot deadline %s: %w", d.ID, err)
		}
		if inserted {
			res.Recorded++
		} else {
			res.Skipped++
		}
	}

	s.log.InfoContext(ctx, "deadline snapshots recorded",
		slog.String("date", domain.FormatDate(today)),
		slog.Int("active", res.Active),
		slog.Int("recorded", res.Recorded),
		slog.Int("skipped", res.Skipped),
	)

	return res, nil
}
