package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/activitycart/api/routes"
	"github.com/angelmondragon/activitycart/internal/cart"
	"github.com/angelmondragon/activitycart/pkg/config"
	"github.com/angelmondragon/activitycart/pkg/instance"
	"github.com/angelmondragon/activitycart/pkg/kv"
	"github.com/angelmondragon/activitycart/pkg/logger"
	"github.com/angelmondragon/activitycart/pkg/metrics"
	"github.com/angelmondragon/activitycart/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := kv.Open(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to open cart storage", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(ctx, cfg, logg, backend.DB); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		closeBackend(logg, backend)
		os.Exit(1)
	}

	var (
		registerer prometheus.Registerer
		gatherer   prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		registerer, gatherer = reg, reg
	}

	counter := cart.NewCounter(cfg.Cart.SubscriberBuffer)
	store, err := cart.NewStore(ctx, cart.StoreParams{
		KV:      backend.Store,
		Key:     cfg.Cart.StorageKey,
		Counter: counter,
		Logger:  logg,
		Metrics: metrics.NewCartMetrics(registerer),
	})
	if err != nil {
		logg.Error(ctx, "failed to create cart store", err)
		closeBackend(logg, backend)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	runCtx := logg.WithFields(ctx, map[string]any{
		"env":        cfg.App.Env,
		"addr":       addr,
		"instance":   instance.ID(),
		"kv_backend": backend.Name,
		"cart_key":   store.Key(),
	})
	logg.Info(runCtx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, store, cart.NewEditor(store), gatherer),
		ReadHeaderTimeout: 10 * time.Second,
	}
	// count streams never go idle on their own
	server.RegisterOnShutdown(counter.Close)

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(runCtx, "api server stopped unexpectedly", err)
			closeBackend(logg, backend)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	logg.Info(runCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	err = multierr.Combine(
		server.Shutdown(shutdownCtx),
		backend.Store.Close(),
	)
	if err != nil {
		logg.Error(runCtx, "api server shutdown incomplete", err)
		os.Exit(1)
	}
	logg.Info(runCtx, "api server stopped")
}

func closeBackend(logg *logger.Logger, backend *kv.Backend) {
	if err := backend.Store.Close(); err != nil {
		logg.Error(context.Background(), "error closing cart storage", err)
	}
}
