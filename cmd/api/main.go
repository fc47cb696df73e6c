package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sumitlokhande/portfolio/internal/api/router"
	"github.com/sumitlokhande/portfolio/internal/app/bootstrap"
	appconfig "github.com/sumitlokhande/portfolio/internal/config"
	"github.com/sumitlokhande/portfolio/internal/contacts"
	"github.com/sumitlokhande/portfolio/internal/observability/metrics"
	"github.com/sumitlokhande/portfolio/pkg/logging"
)

func main() {
	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting portfolio API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	repo, cleanup, err := bootstrap.NewRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize contact store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	sender, err := bootstrap.NewEmailSender(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize email transport", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	contactMetrics := metrics.NewContactMetrics(registry)

	service := contacts.NewService(repo, sender, contacts.ServiceConfig{
		ToEmail:     cfg.ContactToEmail,
		ToName:      cfg.ContactToName,
		Ordering:    contacts.ParseOrdering(cfg.PipelineOrder),
		StepTimeout: cfg.StepTimeout,
	}, contactMetrics, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		ContactsHandler:    contacts.NewHandler(service, logger),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		StaticDir:          cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
