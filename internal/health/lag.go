// Package health compares what the indexer has processed with the chain tip.
package health

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/sync/errgroup"

	"rebalancer/internal/chain"
	"rebalancer/internal/gql"
	"rebalancer/internal/indexer"
)

// ErrIndexerBehind is returned when the lag exceeds the allowed maximum.
var ErrIndexerBehind = errors.New("indexer is behind chain head")

// IndexerSource is the part of the indexer client lag checks need.
type IndexerSource interface {
	GetLatestBlock(ctx context.Context) (*gql.Block, error)
	GetSquidStatus(ctx context.Context) (*gql.SquidStatus, error)
}

// HeadSource reports the chain tip.
type HeadSource interface {
	ChainID(ctx context.Context) (*big.Int, error)
	LatestHead(ctx context.Context) (chain.Head, error)
}

// Report describes how far the indexer trails the chain.
type Report struct {
	IndexedHeight uint64        `json:"indexed_height"`
	IndexedAt     time.Time     `json:"indexed_at"`
	SquidHeight   *int64        `json:"squid_height,omitempty"`
	ChainID       string        `json:"chain_id,omitempty"`
	ChainHeight   uint64        `json:"chain_height,omitempty"`
	ChainTime     *time.Time    `json:"chain_time,omitempty"`
	Behind        uint64        `json:"behind"`
	TimeBehind    time.Duration `json:"time_behind"`
}

// CheckLag queries the indexer and, when heads is not nil, the chain. A
// non-zero maxLag turns a larger Behind into ErrIndexerBehind; the report is
// returned either way.
func CheckLag(ctx context.Context, idx IndexerSource, heads HeadSource, maxLag uint64) (Report, error) {
	if idx == nil {
		return Report{}, fmt.Errorf("indexer client is nil")
	}

	var (
		block   *gql.Block
		status  *gql.SquidStatus
		head    chain.Head
		chainID *big.Int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		block, err = idx.GetLatestBlock(gctx)
		if err != nil {
			return fmt.Errorf("get latest block: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		status, err = idx.GetSquidStatus(gctx)
		if err != nil && !errors.Is(err, indexer.ErrNotFound) {
			return fmt.Errorf("get squid status: %w", err)
		}
		return nil
	})
	if heads != nil {
		g.Go(func() error {
			var err error
			head, err = heads.LatestHead(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			chainID, err = heads.ChainID(gctx)
			if err != nil {
				return fmt.Errorf("chain id: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	if block.Height < 0 {
		return Report{}, fmt.Errorf("negative block height: %d", block.Height)
	}
	rep := Report{
		IndexedHeight: uint64(block.Height),
		IndexedAt:     block.Timestamp.Time.UTC(),
	}
	if status != nil {
		rep.SquidHeight = status.Height
	}
	if heads == nil {
		return rep, nil
	}

	rep.ChainHeight = head.Number
	headTime := head.Time
	rep.ChainTime = &headTime
	if chainID != nil {
		rep.ChainID = chainID.String()
	}
	if head.Number > rep.IndexedHeight {
		rep.Behind = head.Number - rep.IndexedHeight
	}
	if head.Time.After(rep.IndexedAt) {
		rep.TimeBehind = head.Time.Sub(rep.IndexedAt)
	}

	if maxLag > 0 && rep.Behind > maxLag {
		return rep, fmt.Errorf("%w: %d blocks (max %d)", ErrIndexerBehind, rep.Behind, maxLag)
	}
	return rep, nil
}
