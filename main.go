package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/netutil"

	"pharmaconnect/internal/cache"
	"pharmaconnect/internal/config"
	"pharmaconnect/internal/handler"
	"pharmaconnect/internal/metrics"
	custommiddleware "pharmaconnect/internal/middleware"
	"pharmaconnect/internal/query"
	"pharmaconnect/internal/repository"
	"pharmaconnect/internal/scheduler"
	"pharmaconnect/internal/service"
	"pharmaconnect/internal/session"
	"pharmaconnect/internal/shortener"
	"pharmaconnect/internal/validation"
)

const (
	infraInterval   = 10 * time.Second
	queryGCInterval = time.Minute
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	repo, err := repository.New(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	codec, err := shortener.New()
	if err != nil {
		return fmt.Errorf("failed to create session codec: %w", err)
	}

	store, err := cache.New(cfg.Cache.MaxEntriesPow2)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer store.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder := metrics.NewRecorder(repo.Metrics(), &cfg.Metrics, logger,
		metrics.WithStats(metrics.NewStats(registry)))
	if err := recorder.Start(ctx); err != nil {
		return fmt.Errorf("failed to start metrics recorder: %w", err)
	}
	defer recorder.Close()

	client := query.NewClient(store, recorder, cfg.Query, logger,
		query.WithPreloader(service.CompanyPreloader(repo)),
		query.WithStats(query.NewStats(registry)))
	defer client.Close()

	jobs, err := scheduler.New(clockwork.NewRealClock(), logger)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := jobs.Every("query-gc", queryGCInterval, func() { client.Collect() }); err != nil {
		return err
	}
	if err := jobs.Every("infra-stats", infraInterval, func() { collectInfraMetrics(recorder, repo, store) }); err != nil {
		return err
	}
	jobs.Start()
	defer func() {
		if err := jobs.Stop(); err != nil {
			logger.Warn("failed to stop scheduler", slog.String("error", err.Error()))
		}
	}()

	tracker := session.NewTracker(repo, codec, recorder, cfg.Session, logger)
	if err := tracker.Start(); err != nil {
		return fmt.Errorf("failed to start session tracker: %w", err)
	}
	defer tracker.Close()

	beaconValidator := validation.NewBeaconValidator(cfg.Validation, codec)
	dashboard := service.NewDashboardService(repo, client, logger)
	h := handler.New(tracker, beaconValidator, recorder, dashboard, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.Timing(recorder))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, recorder, logger))

	h.Register(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	custommiddleware.RegisterPprof(e, &cfg.Pprof, logger)

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		httpListener = netutil.LimitListener(httpListener, cfg.Server.MaxConnections)
	}

	httpServer := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	go func() {
		if err := httpServer.Serve(httpListener); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

func collectInfraMetrics(recorder *metrics.Recorder, repo *repository.Repository, store *cache.Store) {
	poolStat := repo.Pool().Stat()
	hits, misses, ratio := store.Stats()

	recorder.Record("db_pool_acquired", float64(poolStat.AcquiredConns()), metrics.UnitCount)
	recorder.Record("db_pool_idle", float64(poolStat.IdleConns()), metrics.UnitCount)
	recorder.Record("db_pool_total", float64(poolStat.TotalConns()), metrics.UnitCount)
	recorder.Record("db_pool_max", float64(poolStat.MaxConns()), metrics.UnitCount)
	recorder.Record("query_cache_entries", float64(store.Len()), metrics.UnitCount)
	recorder.Record("query_cache_hit_ratio", ratio, metrics.UnitScore,
		metrics.Int("hits", int64(hits)),
		metrics.Int("misses", int64(misses)))
	recorder.Record("goroutines", float64(runtime.NumGoroutine()), metrics.UnitCount)
}
