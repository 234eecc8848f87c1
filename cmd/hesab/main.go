package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"hesab/internal/amqp"
	"hesab/internal/cli"
	apphttp "hesab/internal/http"
	"hesab/internal/ledger"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("HESAB_LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	result := cli.OpenStore(context.Background(), logger, cfg)

	// AMQP is optional; without it mutations simply skip change events.
	var events ledger.Events
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without change events", "error", err)
		} else {
			defer client.Close()
			events = client
			logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	led := ledger.New(result.Store, events)
	if err := led.Load(context.Background()); err != nil {
		logger.Error("Failed to load snapshot", "error", err)
		os.Exit(1)
	}
	logger.Info("Snapshot loaded",
		"entries", len(led.Entries()), "goals", len(led.Goals()), "backend", cfg.Backend)

	srv := apphttp.NewServer(":"+cfg.Port, led)

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		if result.Cleanup != nil {
			if err := result.Cleanup(); err != nil {
				logger.Error("Store cleanup error", "error", err)
			}
		}
	})

	logger.Info("Starting hesab server", "port", cfg.Port, "backend", cfg.Backend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
