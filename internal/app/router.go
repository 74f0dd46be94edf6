package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/middleware"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/rest"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health       *rest.HealthHandler
	Today        *rest.TodayHandler
	Tasks        *rest.TaskHandler
	BetterItems  *rest.BetterItemHandler
	Habits       *rest.HabitHandler
	Deadlines    *rest.DeadlineHandler
	Money        *rest.MoneyHandler
	Schedule     *rest.ScheduleHandler
	WeeklyReview *rest.WeeklyReviewHandler
	Seed         *rest.SeedHandler
}

// RouterOptions carries the cross-cutting pieces of the HTTP stack.
type RouterOptions struct {
	Version  string
	Identity middleware.IdentityConfig
	// Outer middleware, outermost first. Applied to every route.
	Middleware []middleware.Middleware
	// Metrics is optional. When set /metrics is exposed.
	Metrics *middleware.Metrics
}

// NewRouter mounts every route. Probes, health, the index and /metrics are
// public; everything else under /api runs behind owner identity.
func NewRouter(h Handlers, opts RouterOptions, logger *slog.Logger) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("GET /api/today", h.Today.Get)

	api.HandleFunc("GET /api/tasks", h.Tasks.List)
	api.HandleFunc("POST /api/tasks", h.Tasks.Create)
	api.HandleFunc("POST /api/tasks/{id}/complete", h.Tasks.Complete)
	api.HandleFunc("DELETE /api/tasks/{id}", h.Tasks.Delete)

	api.HandleFunc("GET /api/better-items", h.BetterItems.List)
	api.HandleFunc("POST /api/better-items", h.BetterItems.Create)
	api.HandleFunc("POST /api/better-items/complete", h.BetterItems.Complete)
	api.HandleFunc("POST /api/better-items/accept", h.BetterItems.Accept)
	api.HandleFunc("POST /api/better-items/edit", h.BetterItems.Edit)
	api.HandleFunc("POST /api/better-items/reject", h.BetterItems.Reject)

	api.HandleFunc("GET /api/discipline", h.Habits.GetDiscipline)
	api.HandleFunc("PUT /api/discipline", h.Habits.UpdateDiscipline)
	api.HandleFunc("GET /api/diet", h.Habits.GetDiet)
	api.HandleFunc("PUT /api/diet", h.Habits.UpdateDiet)

	api.HandleFunc("GET /api/deadlines", h.Deadlines.List)
	api.HandleFunc("POST /api/deadlines", h.Deadlines.Create)
	api.HandleFunc("PUT /api/deadlines/{id}", h.Deadlines.Update)
	api.HandleFunc("DELETE /api/deadlines/{id}", h.Deadlines.Delete)

	api.HandleFunc("GET /api/money/summary", h.Money.Summary)
	api.HandleFunc("POST /api/money/income", h.Money.CreateIncome)
	api.HandleFunc("GET /api/money/income", h.Money.ListIncome)

	api.HandleFunc("GET /api/schedule", h.Schedule.ListToday)
	api.HandleFunc("GET /api/schedule/definitions", h.Schedule.ListDefinitions)
	api.HandleFunc("POST /api/schedule/definitions", h.Schedule.CreateDefinition)
	api.HandleFunc("POST /api/schedule/blocks", h.Schedule.CreateBlock)
	api.HandleFunc("PUT /api/schedule/{id}", h.Schedule.UpdateBlock)
	api.HandleFunc("DELETE /api/schedule/{id}", h.Schedule.DeleteBlock)

	api.HandleFunc("GET /api/weekly-review", h.WeeklyReview.Current)
	api.HandleFunc("POST /api/weekly-review/submit", h.WeeklyReview.Submit)

	api.HandleFunc("GET /api/seed", h.Seed.Status)
	api.HandleFunc("POST /api/seed", h.Seed.Seed)
	api.HandleFunc("DELETE /api/seed", h.Seed.Reset)

	api.HandleFunc("/api/", notFound)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /api", rest.Index(opts.Version))
	root.HandleFunc("GET /api/health", h.Health.Health)
	if opts.Metrics != nil {
		root.Handle("GET /metrics", opts.Metrics.Handler())
	}
	root.Handle("/api/", middleware.Identity(opts.Identity, logger)(api))
	root.HandleFunc("/", notFound)

	return middleware.Chain(opts.Middleware...)(root)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	envelope.Fail(w, http.StatusNotFound, "Resource not found")
}
