package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

// seededTables are the tables demo data is written to. Any row in one of
// them means the owner counts as seeded.
var seededTables = []string{"tasks", "schedule_block_instances", "income_entries"}

type taskFixture struct {
	title     string
	category  domain.Category
	completed bool
}

var taskFixtures = []taskFixture{
	{"Review pull requests", domain.CategoryWork, true},
	{"Update project documentation", domain.CategoryWork, false},
	{"Follow up with potential client", domain.CategoryLeverage, false},
	{"Schedule doctor appointment", domain.CategoryHealth, false},
	{"Pay monthly bills", domain.CategoryStability, true},
}

var blockFixtures = []struct {
	title string
	start string
	end   string
}{
	{"Work", "09:00", "10:16"},
	{"Work", "14:00", "15:16"},
}

func demoTasks(ownerID uuid.UUID, now time.Time) []domain.Task {
	today := domain.DateOf(now)
	out := make([]domain.Task, len(taskFixtures))
	for i, f := range taskFixtures {
		out[i] = domain.Task{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			Date:      today,
			Title:     f.title,
			Category:  f.category,
			Completed: f.completed,
			Source:    domain.SourceUser,
			CreatedAt: now,
		}
	}
	return out
}

func demoBlocks(ownerID uuid.UUID, now time.Time) []domain.ScheduleBlockInstance {
	today := domain.DateOf(now)
	out := make([]domain.ScheduleBlockInstance, len(blockFixtures))
	for i, f := range blockFixtures {
		out[i] = domain.ScheduleBlockInstance{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			Date:      today,
			Title:     f.title,
			StartTime: f.start,
			EndTime:   f.end,
			Locked:    true,
			Source:    domain.SourceUser,
			CreatedAt: now,
		}
	}
	return out
}

func demoIncome(ownerID uuid.UUID, now time.Time) []domain.IncomeEntry {
	return []domain.IncomeEntry{{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Date:      domain.DateOf(now).AddDate(0, 0, -6),
		Source:    "Client A",
		Amount:    decimal.NewFromInt(420),
		Currency:  "USD",
		CreatedAt: now,
	}}
}
