// Command refresh-insights recomputes the per-activity insight snapshots
// (total points, log count, last logged at) from the logged-activity ledger.
// It is intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/antonvasilev/zenpoints-backend/internal/adapter/postgres"
	"github.com/antonvasilev/zenpoints-backend/internal/adapter/postgres/insight"
	"github.com/antonvasilev/zenpoints-backend/internal/app"
	"github.com/antonvasilev/zenpoints-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	insightRepo := insight.New(pool)

	refreshed, err := insightRepo.RefreshAll(ctx)
	if err != nil {
		logger.Error("refresh insights failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("insight refresh completed", slog.Int64("activities", refreshed))
}
