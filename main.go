package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"tripindia/catalog"
	"tripindia/config"
	"tripindia/handlers"
	"tripindia/logger"
	"tripindia/metrics"
	"tripindia/services"
	"tripindia/store"
	"tripindia/tracing"
)

func main() {
	cfg, envFileFound, err := config.Load()
	if err != nil {
		logger.Init(config.Development)
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger.Init(cfg.Environment())
	if !envFileFound {
		logger.Info().Msg("No .env file found, using environment variables")
	}

	if cfg.Environment().IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	_, shutdownTracing := tracing.Init(cfg.ServiceName)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn().Err(err).Msg("Tracer shutdown failed")
		}
	}()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("Failed to load city catalog")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	m := metrics.New(reg)

	h := handlers.New(handlers.Deps{
		Catalog:     cat,
		Planner:     services.NewPlanner(cat, logger.Get(), m),
		Itineraries: store.NewItineraryStore(cfg.PDFTTL),
		Metrics:     m,
		Logger:      logger.Get(),
		ServiceName: cfg.ServiceName,
		StaticDir:   cfg.StaticDir,
	})
	router := handlers.NewRouter(h, handlers.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins(),
		Gatherer:       reg,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Str("env", string(cfg.Environment())).
			Int("cities", cat.Len()).
			Msg("Plan Your Trip India backend starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
