package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"wcg/internal/platform/config"
	"wcg/internal/platform/health"
	"wcg/internal/platform/httpserver"
	"wcg/internal/platform/logger"
	"wcg/internal/platform/metrics"
	"wcg/internal/registration"
	"wcg/internal/seeder"
	httptransport "wcg/internal/transport/http"
	request "wcg/pkg/platform/middleware/request"
)

// main wires the offline registration service used to run the conformance
// suite without network access. The API and metrics servers run side by side
// and stop together on SIGINT or SIGTERM.
func main() {
	if err := config.LoadDotEnv(); err != nil {
		logger.New().Error("failed to load .env", "error", err)
		os.Exit(1)
	}
	cfg := config.ServerFromEnv()
	log := logger.NewWithConfig(os.Stdout, config.LoggingFromEnv())

	log.Info("initializing registry mock",
		"addr", cfg.Addr,
		"metrics_addr", cfg.MetricsAddr,
		"environment", cfg.Environment,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	module := registration.NewModule(log, metrics.New(reg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := seeder.New(module.Service, log).SeedFile(ctx, cfg.SeedFile); err != nil {
		log.Error("failed to seed registry", "error", err, "seed_file", cfg.SeedFile)
		os.Exit(1)
	}

	healthHandler := health.New(cfg.Environment, health.WithStore(module.Store))

	router := httptransport.NewRouter(log, httptransport.RouterConfig{
		Latency: request.NewMetrics(reg),
	}, module.Handler, healthHandler)

	metricsRouter := chi.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		return httpserver.Serve(gctx, httpserver.New(cfg.Addr, router))
	})
	g.Go(func() error {
		log.Info("starting metrics server", "addr", cfg.MetricsAddr)
		return httpserver.Serve(gctx, httpserver.New(cfg.MetricsAddr, metricsRouter))
	})

	if err := g.Wait(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
