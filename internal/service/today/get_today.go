package today

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// Get returns the caller's Today view. Day, discipline and diet rows are
// created on first access. The sections are fetched concurrently and any
// failure aborts the whole view.
func (s *Service) Get(ctx context.Context) (*domain.TodayView, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock().UTC()
	today := domain.DateOf(now)

	var (
		betterItems []domain.BetterItem
		tasks       []domain.Task
		discipline  *domain.DisciplineEntry
		diet        *domain.DietEntry
		blocks      []domain.ScheduleBlockInstance
		deadlines   []domain.Deadline
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if _, err := s.days.Ensure(gctx, ownerID, today, now); err != nil {
			return fmt.Errorf("ensure day: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if betterItems, err = s.betterItems.ListByDate(gctx, ownerID, today); err != nil {
			return fmt.Errorf("list better items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if tasks, err = s.tasks.ListByDate(gctx, ownerID, today); err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if discipline, err = s.discipline.Ensure(gctx, ownerID, today, now); err != nil {
			return fmt.Errorf("ensure discipline: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if diet, err = s.diet.Ensure(gctx, ownerID, today, now); err != nil {
			return fmt.Errorf("ensure diet: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if blocks, err = s.schedule.ListInstancesByDate(gctx, ownerID, today); err != nil {
			return fmt.Errorf("list schedule blocks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		horizon := today.AddDate(0, 0, WarningHorizonDays)
		if deadlines, err = s.deadlines.ListActiveDueBetween(gctx, ownerID, today, horizon); err != nil {
			return fmt.Errorf("list upcoming deadlines: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "today view failed",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("get today: %w", err)
	}

	view := &domain.TodayView{
		Date:            today,
		BetterItems:     make([]domain.TodayItem, len(betterItems)),
		Tasks:           make([]domain.TodayItem, len(tasks)),
		Discipline:      disciplineHabits(discipline),
		Diet:            dietSummary(diet),
		CurrentBlock:    selectCurrentBlock(domain.ClockOf(now), blocks),
		DeadlineWarning: selectDeadlineWarning(today, deadlines),
	}
	for i, b := range betterItems {
		view.BetterItems[i] = domain.TodayItem{ID: b.ID.String(), Title: b.Title, Category: b.Category, Completed: b.Completed}
	}
	for i, t := range tasks {
		view.Tasks[i] = domain.TodayItem{ID: t.ID.String(), Title: t.Title, Category: t.Category, Completed: t.Completed}
	}

	return view, nil
}

func disciplineHabits(e *domain.DisciplineEntry) domain.DisciplineHabits {
	return domain.DisciplineHabits{
		Gym:        e.Gym,
		Walk:       e.Walk,
		Cooked:     e.Cooked,
		Diet:       e.Diet,
		Meditation: e.Meditation,
		Water:      e.Water,
	}
}

func dietSummary(e *domain.DietEntry) domain.DietSummary {
	return domain.DietSummary{
		Compliant: e.Compliant,
		PhotoURL:  e.PhotoURL,
		Note:      e.Note,
	}
}

// selectCurrentBlock picks the earliest-starting block whose [start, end)
// contains clock. blocks may arrive in any order. The zero CurrentBlock is
// returned when nothing matches.
func selectCurrentBlock(clock time.Duration, blocks []domain.ScheduleBlockInstance) domain.CurrentBlock {
	var (
		best      *domain.ScheduleBlockInstance
		bestStart time.Duration
	)
	for i := range blocks {
		b := &blocks[i]
		if !b.Contains(clock) {
			continue
		}
		start, _ := domain.ParseClock(b.StartTime)
		if best == nil || start < bestStart {
			best, bestStart = b, start
		}
	}
	if best == nil {
		return domain.CurrentBlock{}
	}
	return domain.CurrentBlock{
		ID:        best.ID.String(),
		Title:     best.Title,
		StartTime: best.StartTime,
		EndTime:   best.EndTime,
	}
}

// selectDeadlineWarning returns the non-completed deadline due soonest
// within [today, today+WarningHorizonDays], or nil.
func selectDeadlineWarning(today time.Time, deadlines []domain.Deadline) *domain.DeadlineWarning {
	horizon := today.AddDate(0, 0, WarningHorizonDays)

	var best *domain.Deadline
	for i := range deadlines {
		d := &deadlines[i]
		if d.Status == domain.DeadlineStatusCompleted {
			continue
		}
		due := domain.DateOf(d.DueDate)
		if due.Before(today) || due.After(horizon) {
			continue
		}
		if best == nil || due.Before(domain.DateOf(best.DueDate)) {
			best = d
		}
	}
	if best == nil {
		return nil
	}

	status := domain.DeadlineStatusOnTrack
	if best.Status == domain.DeadlineStatusBehind {
		status = domain.DeadlineStatusBehind
	}
	return &domain.DeadlineWarning{
		ID:       best.ID.String(),
		Title:    best.Title,
		DaysLeft: best.DaysLeft(today),
		Status:   status.Wire(),
	}
}
