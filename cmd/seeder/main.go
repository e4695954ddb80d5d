// Command seeder inserts the demo roster of eight participants. It is run
// offline, not as part of the server.
//
// Flags:
//
//	--reset      empty the table and restart ids first
//	--if-empty   do nothing when participants already exist
//	--dry-run    validate the roster without writing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/taneeshamadhu18/video-call-assignment/internal/adapter/postgres"
	"github.com/taneeshamadhu18/video-call-assignment/internal/adapter/postgres/participant"
	"github.com/taneeshamadhu18/video-call-assignment/internal/app"
	"github.com/taneeshamadhu18/video-call-assignment/internal/app/seeder"
	"github.com/taneeshamadhu18/video-call-assignment/internal/config"
	"github.com/taneeshamadhu18/video-call-assignment/migrations"
)

// Compile-time interface assertions.
var (
	_ seeder.ParticipantSeedRepo = (*participant.Repo)(nil)
	_ seeder.TxRunner            = (*postgres.TxManager)(nil)
)

func main() {
	os.Exit(run())
}

// run returns the exit code so the pool and context are released first.
func run() int {
	resetFlag := flag.Bool("reset", false, "empty the table and restart ids first")
	ifEmptyFlag := flag.Bool("if-empty", false, "do nothing when participants already exist")
	dryRunFlag := flag.Bool("dry-run", false, "validate the roster without writing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return 1
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			return 1
		}
	}

	pipeline := seeder.NewPipeline(logger, participant.New(pool), postgres.NewTxManager(pool), seeder.Config{
		Reset:           *resetFlag,
		DryRun:          *dryRunFlag,
		SkipIfPopulated: *ifEmptyFlag,
	})
	if _, err := pipeline.Run(ctx); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		return 1
	}
	return 0
}
