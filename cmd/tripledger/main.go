package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"tripledger/internal/amqp"
	"tripledger/internal/backend"
	"tripledger/internal/cli"
	"tripledger/internal/config"
	apphttp "tripledger/internal/http"
	"tripledger/internal/log"
	"tripledger/internal/services"
	"tripledger/internal/trips"
)

func main() {
	cfg := config.Load()
	logger := cli.SetupLogger(cfg, log.ComponentApp)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	// Trip source: local file for development, the planner backend in
	// production.
	var src trips.Source
	switch cfg.TripSource {
	case "http":
		src = trips.NewClient(cfg.TripDataURL, cfg.TripTimeout)
		logger.Info("Using HTTP trip source", "url", cfg.TripDataURL)
	default:
		src = trips.NewFileSource(cfg.TripDataPath)
		logger.Info("Using file trip source", "path", cfg.TripDataPath)
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid records backend configuration", log.FieldError, err)
		os.Exit(1)
	}
	storeResult, err := backend.NewFactory(logger).CreateStore(context.Background(), backendCfg)
	if err != nil {
		logger.Error("Failed to initialize record store", log.FieldError, err, "backend", backendCfg.Type)
		os.Exit(1)
	}

	// AMQP publishing is optional; without it records are simply not
	// exported.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", log.FieldError, err)
			os.Exit(1)
		}
		logger.Info("AMQP publishing enabled", "exchange", cfg.AMQPExchange)
	} else {
		logger.Info("AMQP publishing disabled - no AMQP_URL provided")
	}

	svc := services.NewLedgerService(src, storeResult.Store, amqpClient)
	srv := apphttp.NewServer(":"+cfg.Port, cfg.AllowedOrigins, svc, logger)

	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	ctx := cli.GracefulShutdown(logger, 30*time.Second, func(shutdownCtx context.Context) {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
		if amqpClient != nil {
			_ = amqpClient.Close()
		}
		if storeResult.Cleanup != nil {
			_ = storeResult.Cleanup()
		}
	})

	logger.Info("Starting tripledger server", "port", cfg.Port, "records_backend", cfg.RecordsBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
