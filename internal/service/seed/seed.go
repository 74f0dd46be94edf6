package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// ErrAlreadySeeded is returned by Seed when the owner already has demo data.
var ErrAlreadySeeded = domain.NewBusinessRuleError("Database already seeded. Use DELETE to reset and reseed.")

// Status counts the caller's rows in every seeded table concurrently.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	counts := make([]int64, len(seededTables))
	g, gctx := errgroup.WithContext(ctx)
	for i, table := range seededTables {
		g.Go(func() error {
			n, err := s.owners.CountOwned(gctx, ownerID, table)
			if err != nil {
				return fmt.Errorf("count %s: %w", table, err)
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("seed status: %w", err)
	}

	st := &Status{Counts: make(map[string]int64, len(seededTables))}
	for i, table := range seededTables {
		st.Counts[table] = counts[i]
		if counts[i] > 0 {
			st.Seeded = true
		}
	}
	return st, nil
}

// Seed writes demo data for the caller unless it is already seeded.
func (s *Service) Seed(ctx context.Context) (*Result, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	st, err := s.Status(ctx)
	if err != nil {
		return nil, err
	}
	if st.Seeded {
		return nil, ErrAlreadySeeded
	}

	var res Result
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var seedErr error
		res, seedErr = s.insertDemo(txCtx, ownerID)
		return seedErr
	})
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	s.log.InfoContext(ctx, "demo data seeded",
		slog.String("owner_id", ownerID.String()),
		slog.Int("tasks", res.Tasks),
		slog.Int("schedule_blocks", res.ScheduleBlocks),
		slog.Int("income_entries", res.IncomeEntries),
	)
	return &res, nil
}

// Reset deletes every row the caller owns and seeds again, atomically.
func (s *Service) Reset(ctx context.Context) (*ResetResult, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var out ResetResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deleted, err := s.owners.DeleteOwned(txCtx, ownerID)
		if err != nil {
			return fmt.Errorf("delete owned rows: %w", err)
		}
		out.Deleted = deleted

		out.Seeded, err = s.insertDemo(txCtx, ownerID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}

	s.log.InfoContext(ctx, "demo data reset",
		slog.String("owner_id", ownerID.String()),
		slog.Int64("deleted", out.Deleted),
	)
	return &out, nil
}

func (s *Service) insertDemo(ctx context.Context, ownerID uuid.UUID) (Result, error) {
	now := s.clock().UTC()
	var res Result

	for _, t := range demoTasks(ownerID, now) {
		if _, err := s.tasks.Create(ctx, t); err != nil {
			return res, fmt.Errorf("seed task %q: %w", t.Title, err)
		}
		res.Tasks++
	}
	for _, b := range demoBlocks(ownerID, now) {
		if _, err := s.schedule.CreateInstance(ctx, b); err != nil {
			return res, fmt.Errorf("seed schedule block %s-%s: %w", b.StartTime, b.EndTime, err)
		}
		res.ScheduleBlocks++
	}
	for _, e := range demoIncome(ownerID, now) {
		if _, err := s.income.Create(ctx, e); err != nil {
			return res, fmt.Errorf("seed income %q: %w", e.Source, err)
		}
		res.IncomeEntries++
	}
	return res, nil
}
