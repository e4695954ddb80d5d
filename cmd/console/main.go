// Command console is a terminal client for the participants API.
//
// Configuration is read from CONSOLE_CONFIG_PATH (default ./console.yaml)
// and environment variables. Logs go to --log-file, or nowhere, so they never
// interleave with the screen.
//
// Exit codes: 0 = success, 1 = error, 2 = bad flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taneeshamadhu18/video-call-assignment/internal/adapter/statestore/memory"
	redisstore "github.com/taneeshamadhu18/video-call-assignment/internal/adapter/statestore/redis"
	"github.com/taneeshamadhu18/video-call-assignment/internal/adapter/statestore/sqlite"
	"github.com/taneeshamadhu18/video-call-assignment/internal/app"
	"github.com/taneeshamadhu18/video-call-assignment/internal/client"
	"github.com/taneeshamadhu18/video-call-assignment/internal/config"
	"github.com/taneeshamadhu18/video-call-assignment/internal/console"
	"github.com/taneeshamadhu18/video-call-assignment/internal/viewstate"
)

type durableStore interface {
	viewstate.Store
	Close() error
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit code so every deferred close happens first.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(stderr)
	logFile := fs.String("log-file", "", "append logs to this file")
	noColor := fs.Bool("no-color", false, "disable ANSI colours")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(stderr, "console: load config: %v\n", err)
		return 1
	}

	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "console: open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	logger := app.NewLoggerTo(logOut, cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	durable, err := openStore(ctx, cfg.State)
	if err != nil {
		logger.Error("open state store", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "console: %v\n", err)
		return 1
	}
	defer durable.Close()

	api := client.New(cfg.BaseURL, client.WithTimeout(cfg.Timeout), client.WithLogger(logger))
	capture := console.NewSimulatedCapture(logger)

	var ui *console.Console
	ctrl := viewstate.New(api, durable, memory.New(), viewstate.Config{
		PageSize:        cfg.PageSize,
		DebounceDelay:   cfg.DebounceDelay,
		ErrorClearDelay: cfg.ErrorClearDelay,
	},
		viewstate.WithLogger(logger),
		viewstate.WithMediaCapture(capture),
		viewstate.WithOnChange(func(s viewstate.State) { ui.Notify(s) }),
	)
	ui = console.New(ctrl, stdout, console.Renderer{Color: !*noColor}, logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return ctrl.Run(gctx) })
	g.Go(func() error {
		defer cancel()
		return ui.Run(gctx, stdin)
	})
	if err := g.Wait(); err != nil {
		logger.Error("console stopped", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "console: %v\n", err)
		return 1
	}
	return 0
}

func openStore(ctx context.Context, cfg config.StateConfig) (durableStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	switch cfg.Backend {
	case config.StateBackendRedis:
		return redisstore.Dial(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
	case config.StateBackendMemory:
		return memory.New(), nil
	default:
		return sqlite.Open(ctx, cfg.SQLitePath)
	}
}
