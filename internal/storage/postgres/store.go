package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rebalancer/internal/model"
)

//go:embed schema.sql
var schemaSQL string

// Store provides Postgres persistence for pool snapshots and poller state.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pg dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pg pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate creates the snapshot and state tables when they are missing.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

const upsertPoolSnapshot = `
	INSERT INTO pool_snapshots (
		router_id, pool_id, block_height, kind, token_id, token_symbol, token_decimals,
		lp_token_decimals, paused, reserve, reserve_with_slippage, total_liabilities,
		total_supply, apr, insurance_fee_bps, coverage_ratio, block_time, taken_at,
		created_at, updated_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,now(),now())
	ON CONFLICT (router_id, pool_id, block_height)
	DO UPDATE SET
		kind = EXCLUDED.kind,
		token_id = EXCLUDED.token_id,
		token_symbol = EXCLUDED.token_symbol,
		token_decimals = EXCLUDED.token_decimals,
		lp_token_decimals = EXCLUDED.lp_token_decimals,
		paused = EXCLUDED.paused,
		reserve = EXCLUDED.reserve,
		reserve_with_slippage = EXCLUDED.reserve_with_slippage,
		total_liabilities = EXCLUDED.total_liabilities,
		total_supply = EXCLUDED.total_supply,
		apr = EXCLUDED.apr,
		insurance_fee_bps = EXCLUDED.insurance_fee_bps,
		coverage_ratio = EXCLUDED.coverage_ratio,
		block_time = EXCLUDED.block_time,
		taken_at = EXCLUDED.taken_at,
		updated_at = now()
`

// PutSnapshots upserts every pool of every router snapshot in one batch.
func (s *Store) PutSnapshots(ctx context.Context, snapshots []model.RouterSnapshot) error {
	batch := &pgx.Batch{}
	for _, snap := range snapshots {
		for _, p := range snap.Pools {
			batch.Queue(upsertPoolSnapshot,
				p.RouterID,
				p.PoolID,
				int64(p.BlockHeight),
				string(p.Kind),
				p.TokenID,
				p.TokenSymbol,
				int16(p.TokenDecimals),
				int16(p.LPTokenDecimals),
				p.Paused,
				p.Reserve,
				p.ReserveWithSlippage,
				p.TotalLiabilities,
				p.TotalSupply,
				p.APR,
				p.InsuranceFeeBps,
				p.CoverageRatio,
				snap.BlockTime,
				snap.TakenAt,
			)
		}
	}
	if batch.Len() == 0 {
		return nil
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("upsert pool snapshot: %w", err)
		}
	}
	return nil
}

// State is the poller progress row for one name.
type State struct {
	Height  uint64
	BlockID string
}

// LoadState returns the progress row for a name.
func (s *Store) LoadState(ctx context.Context, name string) (State, bool, error) {
	if name == "" {
		return State{}, false, fmt.Errorf("state name required")
	}
	var (
		height  int64
		blockID string
	)
	row := s.pool.QueryRow(ctx, `SELECT last_processed_height, block_id FROM rebalancer_state WHERE name=$1`, name)
	if err := row.Scan(&height, &blockID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return State{}, false, nil
		}
		return State{}, false, fmt.Errorf("load state %s: %w", name, err)
	}
	return State{Height: uint64(height), BlockID: blockID}, true, nil
}

// SaveState upserts the progress row for a name.
func (s *Store) SaveState(ctx context.Context, name string, st State) error {
	if name == "" {
		return fmt.Errorf("state name required")
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO rebalancer_state (name, last_processed_height, block_id, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (name) DO UPDATE
		SET last_processed_height = EXCLUDED.last_processed_height,
			block_id = EXCLUDED.block_id,
			updated_at = now()
	`, name, int64(st.Height), st.BlockID)
	if err != nil {
		return fmt.Errorf("save state %s: %w", name, err)
	}
	return nil
}
