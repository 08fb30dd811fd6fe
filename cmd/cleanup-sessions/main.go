// Command cleanup-sessions deletes expired sessions. It is intended to be
// invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/communova/communova-backend/internal/adapter/postgres"
	sessionrepo "github.com/communova/communova-backend/internal/adapter/postgres/session"
	"github.com/communova/communova-backend/internal/app"
	"github.com/communova/communova-backend/internal/config"
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

	deleted, err := sessionrepo.New(pool).DeleteExpired(ctx, time.Now())
	if err != nil {
		logger.Error("cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup complete", slog.Int64("deleted", deleted))
}
