// Command reconcile-likes collapses duplicate likes left by the
// insert-without-constraint write path. For every (user, target) pair with
// more than one row it keeps the earliest like and deletes the rest. It is
// intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"golang.org/x/time/rate"

	"github.com/communova/communova-backend/internal/adapter/postgres"
	likerepo "github.com/communova/communova-backend/internal/adapter/postgres/like"
	"github.com/communova/communova-backend/internal/app"
	"github.com/communova/communova-backend/internal/config"
	"github.com/communova/communova-backend/internal/service/engagement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Reconcile.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := engagement.NewService(logger, likerepo.New(pool))
	limiter := rate.NewLimiter(rate.Limit(cfg.Reconcile.DeletesPerSecond), 1)

	report, err := svc.Reconcile(ctx, limiter)
	if err != nil {
		logger.Error("reconciliation failed",
			slog.String("error", err.Error()),
			slog.Int("groups", report.Groups),
			slog.Int("deleted", report.Deleted),
		)
		os.Exit(1)
	}

	logger.Info("reconciliation complete",
		slog.Int("groups", report.Groups),
		slog.Int("deleted", report.Deleted),
	)
}
