package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/taneeshamadhu18/video-call-assignment/internal/adapter/postgres"
	participantrepo "github.com/taneeshamadhu18/video-call-assignment/internal/adapter/postgres/participant"
	"github.com/taneeshamadhu18/video-call-assignment/internal/config"
	"github.com/taneeshamadhu18/video-call-assignment/internal/service/participant"
	"github.com/taneeshamadhu18/video-call-assignment/internal/transport/middleware"
	"github.com/taneeshamadhu18/video-call-assignment/internal/transport/rest"
	"github.com/taneeshamadhu18/video-call-assignment/migrations"
)

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL, applies migrations when enabled and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	limiter := middleware.NewRateLimiter(clockwork.NewRealClock(), time.Minute)
	defer limiter.Stop()

	svc := participant.NewService(logger, participantrepo.New(pool), participant.Limits{
		DefaultPageSize: cfg.API.DefaultPageSize,
		MaxPageSize:     cfg.API.MaxPageSize,
	})

	deps := RouterDeps{
		Logger:       logger,
		API:          cfg.API,
		CORS:         cfg.CORS,
		Health:       rest.NewHealthHandler(pool, Version, nil),
		Participants: rest.NewParticipantHandler(svc, logger),
		Limiter:      limiter,
	}
	if cfg.API.MetricsEnabled {
		deps.Metrics = middleware.NewMetrics(reg)
		deps.Gatherer = reg
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
