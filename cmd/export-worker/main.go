package main

import (
	"context"
	"os"
	"time"

	"tripledger/internal/amqp"
	"tripledger/internal/cli"
	"tripledger/internal/config"
	gexport "tripledger/internal/export/google"
	"tripledger/internal/log"
	"tripledger/internal/worker"
)

func main() {
	cfg := config.Load()
	logger := cli.SetupLogger(cfg, log.ComponentWorker)

	logger.Info("Starting export-worker")

	if err := cfg.ValidateExport(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err)
		os.Exit(1)
	}

	ctx := cli.GracefulShutdown(logger, 10*time.Second, func(context.Context) {
		_ = amqpClient.Close()
	})

	appender, err := gexport.New(ctx, cfg.GoogleSpreadsheetID, cfg.GoogleSheetName)
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Google Sheets client initialized",
		"spreadsheet_id", cfg.GoogleSpreadsheetID,
		"sheet", cfg.GoogleSheetName)

	exportWorker := worker.NewExportWorker(appender)

	err = amqpClient.ConsumeRecordEvents(ctx, func(msg *amqp.RecordEventMessage) error {
		return exportWorker.HandleEvent(ctx, msg)
	})
	if err != nil && err != context.Canceled {
		logger.Error("Message consumption failed", log.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Export worker stopped gracefully")
}
