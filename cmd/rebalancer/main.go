package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rebalancer/internal/config"
	"rebalancer/internal/indexer"
	"rebalancer/internal/poller"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "rebalancer",
		Short:        "Nabla indexer client and pool snapshot poller",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	addQueryCommands(root)

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll routers and write pool snapshots on every new indexed block",
		RunE:  runWatch,
	}
	addIndexerFlags(watchCmd)
	watchCmd.Flags().StringSlice("router", nil, "router ids (comma-separated)")
	watchCmd.Flags().Duration("interval", poller.DefaultInterval, "poll interval")
	watchCmd.Flags().Bool("once", false, "run a single poll and exit")
	watchCmd.Flags().Int("concurrency", poller.DefaultConcurrency, "concurrent router fetches")
	watchCmd.Flags().String("out", "", "output JSONL path")
	watchCmd.Flags().String("pg-dsn", "", "Postgres DSN")
	watchCmd.Flags().Bool("migrate", false, "create Postgres tables before polling")
	watchCmd.Flags().String("state-file", "", "optional local state file for progress tracking")
	watchCmd.Flags().String("state-name", "poller", "state row name when state is kept in Postgres")
	root.AddCommand(watchCmd)

	lagCmd := &cobra.Command{
		Use:   "lag",
		Short: "Compare the indexed height with the chain head",
		RunE:  runLag,
	}
	addIndexerFlags(lagCmd)
	lagCmd.Flags().String("rpc", "", "Ethereum-compatible RPC URL for the chain head")
	lagCmd.Flags().Uint64("max-lag", 0, "fail when the indexer is more than this many blocks behind (0 disables)")
	root.AddCommand(lagCmd)

	return root
}

func addIndexerFlags(cmd *cobra.Command) {
	cmd.Flags().String("indexer-url", "", "indexer GraphQL endpoint")
	cmd.Flags().StringSlice("header", nil, "extra request headers (key: value)")
	cmd.Flags().Duration("timeout", indexer.DefaultTimeout, "per-request timeout")
	cmd.Flags().Int("max-retries", indexer.DefaultMaxRetries, "maximum retry attempts")
	cmd.Flags().Duration("retry-backoff", indexer.DefaultRetryBackoff, "initial retry backoff")
	cmd.Flags().Bool("validate", false, "validate documents against the bundled schema before sending")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func newIndexerClient(cfg config.Common, logger *zap.Logger) (*indexer.Client, error) {
	opts := []indexer.Option{
		indexer.WithTimeout(durationOrDefault(cfg.Timeout, indexer.DefaultTimeout)),
		indexer.WithRetry(cfg.MaxRetries, cfg.RetryBackoff),
		indexer.WithValidation(cfg.Validate),
		indexer.WithLogger(logger),
	}
	for key, value := range cfg.Headers {
		opts = append(opts, indexer.WithHeader(key, value))
	}
	return indexer.NewClient(cfg.IndexerURL, opts...)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func durationOrDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
