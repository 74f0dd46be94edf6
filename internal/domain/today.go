package domain

import "time"

// TodayView is the composite state of the owner's current day.
type TodayView struct {
	Date            time.Time
	BetterItems     []TodayItem
	Tasks           []TodayItem
	Discipline      DisciplineHabits
	Diet            DietSummary
	CurrentBlock    CurrentBlock
	DeadlineWarning *DeadlineWarning
}

// TodayItem is the audit-free projection of a task or better-item.
type TodayItem struct {
	ID        string
	Title     string
	Category  Category
	Completed bool
}

// DisciplineHabits carries only the six habit flags.
type DisciplineHabits struct {
	Gym        bool
	Walk       bool
	Cooked     bool
	Diet       bool
	Meditation bool
	Water      bool
}

// DietSummary is the Today projection of a DietEntry.
type DietSummary struct {
	Compliant bool
	PhotoURL  string
	Note      string
}

// CurrentBlock is the block containing "now". The zero value is the
// placeholder used when no block matches.
type CurrentBlock struct {
	ID        string
	Title     string
	StartTime string
	EndTime   string
}

// DeadlineWarning is the most urgent unresolved deadline in the horizon.
type DeadlineWarning struct {
	ID       string
	Title    string
	DaysLeft int
	Status   string
}
