// Command seeder fills an owner's workspace with demo data for local
// development. It does nothing when the owner already has data unless
// --reset is given, in which case every owned row is deleted first.
//
// Flags:
//
//	--owner  owner id to seed (default: auth.default_owner_id)
//	--reset  delete the owner's rows and seed again
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/app"
	"github.com/heartmarshall/daily-pos-backend/internal/config"
	"github.com/heartmarshall/daily-pos-backend/internal/service/seed"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

func main() {
	ownerFlag := flag.String("owner", "", "owner id to seed (default: configured default owner)")
	resetFlag := flag.Bool("reset", false, "delete the owner's rows and seed again")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ownerID := cfg.Auth.DefaultOwner
	if *ownerFlag != "" {
		ownerID, err = uuid.Parse(*ownerFlag)
		if err != nil {
			logger.Error("parse --owner", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := app.OpenDatabase(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repos := app.NewRepos(pool)
	if err := app.EnsureOwner(ctx, repos.Users, ownerID); err != nil {
		logger.Error("ensure owner", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := app.NewServices(logger, repos, postgres.NewTxManager(pool)).Seed
	ctx = ctxutil.WithOwnerID(ctx, ownerID)

	if *resetFlag {
		res, err := svc.Reset(ctx)
		if err != nil {
			logger.Error("reset failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("reset completed",
			slog.String("owner_id", ownerID.String()),
			slog.Int64("deleted", res.Deleted),
			slog.Int("tasks", res.Seeded.Tasks),
			slog.Int("schedule_blocks", res.Seeded.ScheduleBlocks),
			slog.Int("income_entries", res.Seeded.IncomeEntries),
		)
		return
	}

	res, err := svc.Seed(ctx)
	if errors.Is(err, seed.ErrAlreadySeeded) {
		logger.Info("owner already seeded, use --reset to reseed", slog.String("owner_id", ownerID.String()))
		return
	}
	if err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed completed",
		slog.String("owner_id", ownerID.String()),
		slog.Int("tasks", res.Tasks),
		slog.Int("schedule_blocks", res.ScheduleBlocks),
		slog.Int("income_entries", res.IncomeEntries),
	)
}
