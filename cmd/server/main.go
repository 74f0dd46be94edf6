// Command server runs the daily-pos HTTP API.
//
// Configuration is read from CONFIG_PATH (fallback ./config.yaml) and the
// environment. SIGINT or SIGTERM triggers a graceful shutdown.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/daily-pos-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
