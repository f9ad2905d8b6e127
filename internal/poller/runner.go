package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rebalancer/internal/gql"
	"rebalancer/internal/model"
	"rebalancer/internal/snapshot"
	"rebalancer/internal/storage"
)

const (
	DefaultInterval    = 12 * time.Second
	DefaultConcurrency = 4
)

// Indexer is the part of the indexer client the poller needs.
type Indexer interface {
	GetLatestBlock(ctx context.Context) (*gql.Block, error)
	GetRouter(ctx context.Context, id string) (*gql.Router, error)
}

// RunConfig holds runtime settings for the poller.
type RunConfig struct {
	RouterIDs   []string
	Interval    time.Duration
	Once        bool
	Concurrency int
}

// Runner polls the indexer and writes router snapshots whenever the indexed
// height advances.
type Runner struct {
	cfg     RunConfig
	indexer Indexer
	sink    storage.Sink
	state   StateStore
	logger  *zap.Logger
	now     func() time.Time
}

// NewRunner builds a Runner. A nil state store keeps state in memory.
func NewRunner(cfg RunConfig, idx Indexer, sink storage.Sink, state StateStore, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if state == nil {
		state = &MemoryStateStore{}
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &Runner{
		cfg:     cfg,
		indexer: idx,
		sink:    sink,
		state:   state,
		logger:  logger,
		now:     time.Now,
	}
}

// Run polls until ctx is done. With Once set it runs a single tick and
// returns its error.
func (r *Runner) Run(ctx context.Context) error {
	if r.indexer == nil {
		return fmt.Errorf("indexer client is nil")
	}
	if r.sink == nil {
		return fmt.Errorf("sink is nil")
	}
	if len(r.cfg.RouterIDs) == 0 {
		return fmt.Errorf("at least one router id is required")
	}

	if r.cfg.Once {
		_, err := r.Tick(ctx)
		return err
	}

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		if _, err := r.Tick(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Error("poll failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Tick performs one poll. It reports whether snapshots were written.
func (r *Runner) Tick(ctx context.Context) (bool, error) {
	block, err := r.indexer.GetLatestBlock(ctx)
	if err != nil {
		return false, fmt.Errorf("get latest block: %w", err)
	}
	if block.Height < 0 {
		return false, fmt.Errorf("negative block height: %d", block.Height)
	}
	height := uint64(block.Height)

	last, ok, err := r.state.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load state: %w", err)
	}
	if ok && !r.advanced(last, height, block.ID) {
		return false, nil
	}

	routers, err := r.fetchRouters(ctx)
	if err != nil {
		return false, err
	}

	takenAt := r.now()
	snapshots := make([]model.RouterSnapshot, 0, len(routers))
	pools := 0
	for _, router := range routers {
		snap, err := snapshot.Build(*block, *router, takenAt)
		if err != nil {
			return false, fmt.Errorf("build snapshot %s: %w", router.ID, err)
		}
		pools += len(snap.Pools)
		snapshots = append(snapshots, snap)
	}

	if err := r.sink.PutSnapshots(ctx, snapshots); err != nil {
		return false, fmt.Errorf("store snapshots: %w", err)
	}
	if err := r.state.Save(ctx, Checkpoint{Height: height, BlockID: block.ID}); err != nil {
		return false, fmt.Errorf("save state: %w", err)
	}

	r.logger.Info("snapshots written",
		zap.Uint64("height", height),
		zap.Int("routers", len(snapshots)),
		zap.Int("pools", pools),
	)
	return true, nil
}

// advanced reports whether the indexed block differs from the checkpoint in a
// way that calls for new snapshots. A different block id at the processed
// height means the indexer replaced that block; its snapshots are rewritten.
func (r *Runner) advanced(last Checkpoint, height uint64, blockID string) bool {
	switch {
	case height > last.Height:
		return true
	case height < last.Height:
		r.logger.Warn("indexed height below checkpoint",
			zap.Uint64("height", height),
			zap.Uint64("last_processed", last.Height),
		)
		return false
	case last.BlockID != "" && blockID != last.BlockID:
		r.logger.Warn("indexed block replaced",
			zap.Uint64("height", height),
			zap.String("block_id", blockID),
			zap.String("previous_block_id", last.BlockID),
		)
		return true
	default:
		r.logger.Debug("no new block", zap.Uint64("height", height))
		return false
	}
}

func (r *Runner) fetchRouters(ctx context.Context) ([]*gql.Router, error) {
	routers := make([]*gql.Router, len(r.cfg.RouterIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for i, id := range r.cfg.RouterIDs {
		i, id := i, id
		g.Go(func() error {
			router, err := r.indexer.GetRouter(gctx, id)
			if err != nil {
				return fmt.Errorf("get router %s: %w", id, err)
			}
			routers[i] = router
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return routers, nil
}

// IsShutdown reports whether err only signals that the context ended.
func IsShutdown(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
