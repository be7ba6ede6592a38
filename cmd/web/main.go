package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"anchorpoint-it.com/infopanel/internal/config"
	"anchorpoint-it.com/infopanel/internal/logging"
	"anchorpoint-it.com/infopanel/internal/metrics"
	"anchorpoint-it.com/infopanel/internal/network"
	"anchorpoint-it.com/infopanel/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Sync()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	lookups := metrics.NewLookups(reg)

	resolver := network.NewResolver(cfg.Lookup.URL,
		network.WithHTTPClient(&http.Client{Timeout: cfg.Lookup.Timeout}),
		network.WithLogger(logger.Named("network")),
		network.WithObserver(lookups),
	)

	app, err := web.New(logger.Named("web"), resolver, cfg.Display, reg)
	if err != nil {
		logger.Fatal("Failed to initialize web application", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		ErrorLog:     zap.NewStdLog(logger),
		Handler:      app.Routes(),
		IdleTimeout:  2 * time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}

	logger.Info("Starting Anchorpoint info panel",
		zap.String("addr", srv.Addr),
		zap.String("lookup_url", resolver.URL()))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}
