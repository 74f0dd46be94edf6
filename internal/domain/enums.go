package domain

// enumTable is a closed set of values with an explicit mapping to their
// wire strings and back. Values missing from the table are invalid.
type enumTable[T comparable] struct {
	toWire   map[T]string
	fromWire map[string]T
	order    []T
}

func newEnumTable[T comparable](pairs ...enumPair[T]) enumTable[T] {
	t := enumTable[T]{
		toWire:   make(map[T]string, len(pairs)),
		fromWire: make(map[string]T, len(pairs)),
		order:    make([]T, 0, len(pairs)),
	}
	for _, p := range pairs {
		t.toWire[p.value] = p.wire
		t.fromWire[p.wire] = p.value
		t.order = append(t.order, p.value)
	}
	return t
}

type enumPair[T comparable] struct {
	value T
	wire  string
}

func (t enumTable[T]) wire(v T) string { return t.toWire[v] }

func (t enumTable[T]) valid(v T) bool {
	_, ok := t.toWire[v]
	return ok
}

func (t enumTable[T]) parse(s string) (T, bool) {
	v, ok := t.fromWire[s]
	return v, ok
}

func (t enumTable[T]) wires() []string {
	out := make([]string, len(t.order))
	for i, v := range t.order {
		out[i] = t.toWire[v]
	}
	return out
}

// ---------------------------------------------------------------------------
// Category
// ---------------------------------------------------------------------------

// Category groups tasks and better-items by life area.
type Category string

const (
	CategoryWork      Category = "work"
	CategoryLeverage  Category = "leverage"
	CategoryHealth    Category = "health"
	CategoryStability Category = "stability"
)

var categories = newEnumTable(
	enumPair[Category]{CategoryWork, "work"},
	enumPair[Category]{CategoryLeverage, "leverage"},
	enumPair[Category]{CategoryHealth, "health"},
	enumPair[Category]{CategoryStability, "stability"},
)

func (c Category) String() string { return categories.wire(c) }

func (c Category) IsValid() bool { return categories.valid(c) }

// ParseCategory maps a wire string to a Category.
func ParseCategory(s string) (Category, bool) { return categories.parse(s) }

// CategoryValues lists the accepted wire strings.
func CategoryValues() []string { return categories.wires() }

// ---------------------------------------------------------------------------
// Source
// ---------------------------------------------------------------------------

// Source records who created an item.
type Source string

const (
	SourceAI   Source = "ai"
	SourceUser Source = "user"
)

var sources = newEnumTable(
	enumPair[Source]{SourceAI, "ai"},
	enumPair[Source]{SourceUser, "user"},
)

func (s Source) String() string { return sources.wire(s) }

func (s Source) IsValid() bool { return sources.valid(s) }

// ---------------------------------------------------------------------------
// DeadlineStatus
// ---------------------------------------------------------------------------

// DeadlineStatus is the progress marker of a deadline. The stored value and
// the wire string differ ("on_track" is sent as "on track").
type DeadlineStatus string

const (
	DeadlineStatusOnTrack   DeadlineStatus = "on_track"
	DeadlineStatusBehind    DeadlineStatus = "behind"
	DeadlineStatusCompleted DeadlineStatus = "completed"
)

var deadlineStatuses = newEnumTable(
	enumPair[DeadlineStatus]{DeadlineStatusOnTrack, "on track"},
	enumPair[DeadlineStatus]{DeadlineStatusBehind, "behind"},
	enumPair[DeadlineStatus]{DeadlineStatusCompleted, "completed"},
)

// Wire returns the string exposed over HTTP.
func (s DeadlineStatus) Wire() string { return deadlineStatuses.wire(s) }

func (s DeadlineStatus) String() string { return string(s) }

func (s DeadlineStatus) IsValid() bool { return deadlineStatuses.valid(s) }

// ParseDeadlineStatus maps a wire string ("on track", "behind", "completed").
func ParseDeadlineStatus(s string) (DeadlineStatus, bool) { return deadlineStatuses.parse(s) }

// DeadlineStatusValues lists the accepted wire strings.
func DeadlineStatusValues() []string { return deadlineStatuses.wires() }

// ---------------------------------------------------------------------------
// Schedule enums
// ---------------------------------------------------------------------------

// BlockKind is how a schedule definition is placed in the week.
type BlockKind string

const (
	BlockKindFixed     BlockKind = "fixed"
	BlockKindFlexible  BlockKind = "flexible"
	BlockKindRecurring BlockKind = "recurring"
)

var blockKinds = newEnumTable(
	enumPair[BlockKind]{BlockKindFixed, "fixed"},
	enumPair[BlockKind]{BlockKindFlexible, "flexible"},
	enumPair[BlockKind]{BlockKindRecurring, "recurring"},
)

func (k BlockKind) String() string { return blockKinds.wire(k) }

func (k BlockKind) IsValid() bool { return blockKinds.valid(k) }

// ParseBlockKind maps a wire string to a BlockKind.
func ParseBlockKind(s string) (BlockKind, bool) { return blockKinds.parse(s) }

// BlockKindValues lists the accepted wire strings.
func BlockKindValues() []string { return blockKinds.wires() }

// Recurrence is the repeat rule of a schedule definition.
type Recurrence string

const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

var recurrences = newEnumTable(
	enumPair[Recurrence]{RecurrenceNone, "none"},
	enumPair[Recurrence]{RecurrenceDaily, "daily"},
	enumPair[Recurrence]{RecurrenceWeekly, "weekly"},
)

func (r Recurrence) String() string { return recurrences.wire(r) }

func (r Recurrence) IsValid() bool { return recurrences.valid(r) }

// ParseRecurrence maps a wire string to a Recurrence.
func ParseRecurrence(s string) (Recurrence, bool) { return recurrences.parse(s) }

// RecurrenceValues lists the accepted wire strings.
func RecurrenceValues() []string { return recurrences.wires() }

// Energy is the effort level a block demands.
type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

var energies = newEnumTable(
	enumPair[Energy]{EnergyLow, "low"},
	enumPair[Energy]{EnergyMedium, "medium"},
	enumPair[Energy]{EnergyHigh, "high"},
)

func (e Energy) String() string { return energies.wire(e) }

func (e Energy) IsValid() bool { return energies.valid(e) }

// ParseEnergy maps a wire string to an Energy.
func ParseEnergy(s string) (Energy, bool) { return energies.parse(s) }

// EnergyValues lists the accepted wire strings.
func EnergyValues() []string { return energies.wires() }

// TimeTag is the preferred part of the day for a flexible block.
type TimeTag string

const (
	TimeTagMorning   TimeTag = "morning"
	TimeTagAfternoon TimeTag = "afternoon"
	TimeTagEvening   TimeTag = "evening"
)

var timeTags = newEnumTable(
	enumPair[TimeTag]{TimeTagMorning, "morning"},
	enumPair[TimeTag]{TimeTagAfternoon, "afternoon"},
	enumPair[TimeTag]{TimeTagEvening, "evening"},
)

func (t TimeTag) String() string { return timeTags.wire(t) }

func (t TimeTag) IsValid() bool { return timeTags.valid(t) }

// ParseTimeTag maps a wire string to a TimeTag.
func ParseTimeTag(s string) (TimeTag, bool) { return timeTags.parse(s) }

// TimeTagValues lists the accepted wire strings.
func TimeTagValues() []string { return timeTags.wires() }
