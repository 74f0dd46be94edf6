// Command snapshot-deadlines records today's status and days-left of every
// active deadline. Running it twice on the same day records nothing new.
// It is meant to be scheduled once a day by an external cron.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/app"
	"github.com/heartmarshall/daily-pos-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := app.OpenDatabase(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := app.NewServices(logger, app.NewRepos(pool), postgres.NewTxManager(pool)).Deadlines

	res, err := svc.RecordSnapshots(ctx)
	if err != nil {
		logger.Error("record snapshots", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("deadline snapshots recorded",
		slog.Int("active", res.Active),
		slog.Int("recorded", res.Recorded),
		slog.Int("skipped", res.Skipped),
	)
}
