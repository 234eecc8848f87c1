package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"hesab/internal/amqp"
	"hesab/internal/cli"
	applog "hesab/internal/log"
	"hesab/internal/worker"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("HESAB_LOG_LEVEL"))
	logger = logger.WithComponent(applog.ComponentWorker)
	cfg := cli.LoadAndValidateConfig(logger)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the mirror worker")
		os.Exit(1)
	}

	result := cli.OpenStore(context.Background(), logger, cfg)
	defer func() {
		if result.Cleanup != nil {
			_ = result.Cleanup()
		}
	}()

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	mirror, err := worker.NewMirrorWorker(result.Store, cfg.MirrorFile)
	if err != nil {
		logger.Error("Failed to initialize mirror worker", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Catch up on anything that changed while the worker was down,
	// then follow change events.
	if err := mirror.MirrorAll(ctx); err != nil {
		logger.Error("Initial mirror failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Mirror worker started", "mirror_file", cfg.MirrorFile, "queue", cfg.AMQPQueue)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return client.ConsumeChanges(gctx, func(msg *amqp.ChangeMessage) error {
			return mirror.HandleChange(gctx, msg)
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Mirror worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Mirror worker stopped")
}
