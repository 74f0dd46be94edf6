package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	betteritemrepo "github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres/betteritem"
	dayrepo "github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres/day"
	deadlinerepo "github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres/deadline"
	dietrepo "github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres/diet"
	disciplinerepo "github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres/discipline"
	incomerepo "github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres/income"
	schedulerepo "github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres/schedule"
	taskrepo "github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres/task"
	userrepo "github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres/user"
	weeklyreviewrepo "github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres/weeklyreview"
	"github.com/heartmarshall/daily-pos-backend/internal/config"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/service/betteritem"
	"github.com/heartmarshall/daily-pos-backend/internal/service/deadline"
	"github.com/heartmarshall/daily-pos-backend/internal/service/diet"
	"github.com/heartmarshall/daily-pos-backend/internal/service/discipline"
	"github.com/heartmarshall/daily-pos-backend/internal/service/money"
	"github.com/heartmarshall/daily-pos-backend/internal/service/schedule"
	"github.com/heartmarshall/daily-pos-backend/internal/service/seed"
	"github.com/heartmarshall/daily-pos-backend/internal/service/task"
	"github.com/heartmarshall/daily-pos-backend/internal/service/today"
	"github.com/heartmarshall/daily-pos-backend/internal/service/weeklyreview"
)

// Repos holds one repository per table group, all sharing the pool.
type Repos struct {
	Users        *userrepo.Repo
	Days         *dayrepo.Repo
	Tasks        *taskrepo.Repo
	BetterItems  *betteritemrepo.Repo
	Discipline   *disciplinerepo.Repo
	Diet         *dietrepo.Repo
	Deadlines    *deadlinerepo.Repo
	Income       *incomerepo.Repo
	Schedule     *schedulerepo.Repo
	WeeklyReview *weeklyreviewrepo.Repo
}

// NewRepos creates every repository over db.
func NewRepos(db postgres.Querier) Repos {
	return Repos{
		Users:        userrepo.New(db),
		Days:         dayrepo.New(db),
		Tasks:        taskrepo.New(db),
		BetterItems:  betteritemrepo.New(db),
		Discipline:   disciplinerepo.New(db),
		Diet:         dietrepo.New(db),
		Deadlines:    deadlinerepo.New(db),
		Income:       incomerepo.New(db),
		Schedule:     schedulerepo.New(db),
		WeeklyReview: weeklyreviewrepo.New(db),
	}
}

// Services holds the domain services the HTTP layer and the commands use.
type Services struct {
	Today        *today.Service
	Tasks        *task.Service
	BetterItems  *betteritem.Service
	Discipline   *discipline.Service
	Diet         *diet.Service
	Deadlines    *deadline.Service
	Money        *money.Service
	Schedule     *schedule.Service
	WeeklyReview *weeklyreview.Service
	Seed         *seed.Service
}

// NewServices creates every service over the given repositories.
func NewServices(logger *slog.Logger, r Repos, tx *postgres.TxManager) Services {
	return Services{
		Today: today.NewService(logger,
			r.Days, r.BetterItems, r.Tasks, r.Discipline, r.Diet, r.Schedule, r.Deadlines),
		Tasks:        task.NewService(logger, r.Tasks),
		BetterItems:  betteritem.NewService(logger, r.BetterItems),
		Discipline:   discipline.NewService(logger, r.Discipline),
		Diet:         diet.NewService(logger, r.Diet),
		Deadlines:    deadline.NewService(logger, r.Deadlines),
		Money:        money.NewService(logger, r.Income),
		Schedule:     schedule.NewService(logger, r.Schedule),
		WeeklyReview: weeklyreview.NewService(logger, r.WeeklyReview),
		Seed:         seed.NewService(logger, r.Users, r.Tasks, r.Schedule, r.Income, tx),
	}
}

// OpenDatabase connects the pool and applies migrations when configured.
// The caller owns the returned pool.
func OpenDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return pool, nil
}

// EnsureOwner makes sure the owner row exists so that owned rows can
// reference it.
func EnsureOwner(ctx context.Context, users *userrepo.Repo, ownerID uuid.UUID) error {
	_, err := users.Ensure(ctx, domain.User{
		ID:        ownerID,
		Name:      "Owner",
		Timezone:  domain.DefaultTimezone,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("ensure owner %s: %w", ownerID, err)
	}
	return nil
}

// OwnerProvisioner creates owner rows for identities resolved from bearer
// tokens. It satisfies the identity middleware's provisioning hook.
type OwnerProvisioner struct {
	users *userrepo.Repo
}

func NewOwnerProvisioner(users *userrepo.Repo) *OwnerProvisioner {
	return &OwnerProvisioner{users: users}
}

func (p *OwnerProvisioner) EnsureOwner(ctx context.Context, ownerID uuid.UUID) error {
	return EnsureOwner(ctx, p.users, ownerID)
}
