package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rebalancer/internal/config"
	"rebalancer/internal/gql"
	"rebalancer/internal/indexer"
)

func addQueryCommands(root *cobra.Command) {
	latestCmd := &cobra.Command{
		Use:   "latest-block",
		Short: "Print the most recently indexed block",
		RunE: withQuery(func(ctx context.Context, cmd *cobra.Command, client *indexer.Client, _ config.QueryConfig) error {
			block, err := client.GetLatestBlock(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), block)
		}),
	}
	addIndexerFlags(latestCmd)
	root.AddCommand(latestCmd)

	routerCmd := &cobra.Command{
		Use:   "router",
		Short: "Print a router with its swap pools and backstop pool",
		RunE: withQuery(func(ctx context.Context, cmd *cobra.Command, client *indexer.Client, cfg config.QueryConfig) error {
			ids, err := indexer.ParseRouterIDs([]string{cfg.RouterID})
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				return fmt.Errorf("router id is required")
			}
			router, err := client.GetRouter(ctx, ids[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), router)
		}),
	}
	addIndexerFlags(routerCmd)
	routerCmd.Flags().String("id", "", "router id")
	root.AddCommand(routerCmd)

	statusCmd := &cobra.Command{
		Use:   "squid-status",
		Short: "Print the processor height reported by the indexer",
		RunE: withQuery(func(ctx context.Context, cmd *cobra.Command, client *indexer.Client, _ config.QueryConfig) error {
			status, err := client.GetSquidStatus(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), status)
		}),
	}
	addIndexerFlags(statusCmd)
	root.AddCommand(statusCmd)

	poolsCmd := &cobra.Command{
		Use:   "swap-pools",
		Short: "List swap pools",
		RunE:  withQuery(runSwapPools),
	}
	addIndexerFlags(poolsCmd)
	poolsCmd.Flags().String("where", "", "SwapPoolWhereInput filter as JSON")
	poolsCmd.Flags().StringSlice("order-by", nil, "SwapPoolOrderByInput values (comma-separated)")
	poolsCmd.Flags().Int("limit", 0, "page size, 0 leaves it to the indexer")
	poolsCmd.Flags().Int("offset", 0, "rows to skip")
	poolsCmd.Flags().Bool("all", false, "page through every matching pool")
	poolsCmd.Flags().Int("page-size", indexer.DefaultPageSize, "page size used with --all")
	root.AddCommand(poolsCmd)

	validateCmd := &cobra.Command{
		Use:   "validate [file.graphql...]",
		Short: "Validate bundled and extra documents against the indexer schema",
		RunE:  runValidate,
	}
	validateCmd.Flags().Bool("print-schema", false, "print the bundled indexer schema and exit")
	root.AddCommand(validateCmd)
}

type queryFunc func(ctx context.Context, cmd *cobra.Command, client *indexer.Client, cfg config.QueryConfig) error

func withQuery(fn queryFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgFile, cmd.Flags())
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

		logger.Debug("query", zap.String("command", cmd.Name()), zap.String("indexer", client.Endpoint()))
		return fn(ctx, cmd, client, cfg)
	}
}

func runSwapPools(ctx context.Context, cmd *cobra.Command, client *indexer.Client, cfg config.QueryConfig) error {
	if cfg.All && (len(cfg.OrderBy) > 0 || cfg.Limit > 0 || cfg.Offset > 0) {
		return fmt.Errorf("--all pages by id and cannot be combined with --order-by, --limit or --offset")
	}

	var where *gql.SwapPoolWhereInput
	if cfg.Where != "" {
		where = &gql.SwapPoolWhereInput{}
		if err := json.Unmarshal([]byte(cfg.Where), where); err != nil {
			return fmt.Errorf("parse where: %w", err)
		}
	}

	if cfg.All {
		pools, err := client.AllSwapPools(ctx, where, cfg.PageSize)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), pools)
	}

	vars := gql.GetSwapPoolsQueryVariables{Where: where}
	for _, order := range cfg.OrderBy {
		vars.OrderBy = append(vars.OrderBy, gql.SwapPoolOrderByInput(order))
	}
	if cfg.Limit > 0 {
		vars.Limit = gql.Ptr(cfg.Limit)
	}
	if cfg.Offset > 0 {
		vars.Offset = gql.Ptr(cfg.Offset)
	}

	pools, err := client.GetSwapPools(ctx, vars)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), pools)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if printSchema, _ := cmd.Flags().GetBool("print-schema"); printSchema {
		_, err := fmt.Fprint(out, gql.SchemaSDL())
		return err
	}
	if err := gql.ValidateDocuments(); err != nil {
		return err
	}
	fmt.Fprintf(out, "bundled documents ok (%d)\n", len(gql.Documents))

	failed := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		doc, err := gql.ValidateDocument(string(data))
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "%s: ok %v\n", path, gql.OperationNames(doc))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
	}
	return nil
}
