// Command server runs the Communova HTTP API.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables;
// see internal/config for the full list. The server stops gracefully on
// SIGINT or SIGTERM.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/communova/communova-backend/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
