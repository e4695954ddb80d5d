// Command server runs the participants REST API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and
// environment variables. The process stops gracefully on SIGINT or SIGTERM.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/taneeshamadhu18/video-call-assignment/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		return 1
	}
	return 0
}
