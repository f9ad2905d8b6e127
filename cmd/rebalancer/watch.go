package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rebalancer/internal/config"
	"rebalancer/internal/indexer"
	"rebalancer/internal/poller"
	"rebalancer/internal/storage"
	"rebalancer/internal/storage/postgres"
)

func runWatch(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadWatch(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	routers, err := indexer.ParseRouterIDs(cfg.Routers)
	if err != nil {
		return err
	}
	if len(routers) == 0 {
		return fmt.Errorf("router list is required")
	}
	if cfg.Out == "" && cfg.PGDSN == "" {
		return fmt.Errorf("at least one of --out or --pg-dsn is required")
	}

	client, err := newIndexerClient(cfg.Common, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sinks storage.MultiSink
	if cfg.Out != "" {
		sinks = append(sinks, storage.NewJsonlStorage(cfg.Out))
	}

	var store *postgres.Store
	if cfg.PGDSN != "" {
		store, err = postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()

		if cfg.Migrate {
			if err := store.Migrate(ctx); err != nil {
				return err
			}
		}
		sinks = append(sinks, store)
	}

	var stateStore poller.StateStore
	switch {
	case cfg.StateFile != "":
		stateStore = &poller.FileStateStore{Path: cfg.StateFile}
	case store != nil:
		stateStore = &poller.DBStateStore{Store: store, Name: cfg.StateName}
	default:
		logger.Warn("no state file or database configured, progress is kept in memory")
	}

	runner := poller.NewRunner(poller.RunConfig{
		RouterIDs:   routers,
		Interval:    cfg.Interval,
		Once:        cfg.Once,
		Concurrency: cfg.Concurrency,
	}, client, sinks, stateStore, logger)

	logger.Info("watch start",
		zap.String("indexer", client.Endpoint()),
		zap.Strings("routers", routers),
		zap.Duration("interval", cfg.Interval),
		zap.Bool("once", cfg.Once),
		zap.String("out", cfg.Out),
		zap.Bool("postgres", store != nil),
		zap.String("state_file", cfg.StateFile),
	)

	if err := runner.Run(ctx); err != nil {
		if poller.IsShutdown(err) && ctx.Err() != nil {
			logger.Info("watch stopped")
			return nil
		}
		return err
	}
	return nil
}
