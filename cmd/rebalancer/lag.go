package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rebalancer/internal/chain"
	"rebalancer/internal/config"
	"rebalancer/internal/health"
)

func runLag(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadLag(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	client, err := newIndexerClient(cfg.Common, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var heads health.HeadSource
	if cfg.RPCURL != "" {
		chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
		if err != nil {
			return fmt.Errorf("connect rpc: %w", err)
		}
		defer chainClient.Close()
		heads = chainClient
	} else if cfg.MaxLag > 0 {
		return fmt.Errorf("--max-lag needs --rpc")
	}

	report, err := health.CheckLag(ctx, client, heads, cfg.MaxLag)
	if err != nil && !errors.Is(err, health.ErrIndexerBehind) {
		return err
	}
	if printErr := printJSON(cmd.OutOrStdout(), report); printErr != nil {
		return printErr
	}
	if err != nil {
		logger.Warn("indexer lagging", zap.Uint64("behind", report.Behind), zap.Uint64("max_lag", cfg.MaxLag))
	}
	return err
}
