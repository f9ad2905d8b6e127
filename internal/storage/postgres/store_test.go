package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebalancer/internal/model"
	"rebalancer/internal/storage/postgres/pgtest"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	store, err := NewStore(ctx, pgtest.DSN(t))
	require.NoError(t, err)
	t.Cleanup(store.Close)

	require.NoError(t, store.Migrate(ctx))
	return store
}

func ptr[T any](v T) *T {
	return &v
}

func testSnapshot(reserve string, ratio *string) model.RouterSnapshot {
	return model.RouterSnapshot{
		RouterID:    "router-1",
		BlockID:     "0000000120-abcde",
		BlockHeight: 120,
		BlockTime:   "2024-02-01T10:00:00Z",
		TakenAt:     "2024-02-01T10:00:05.123456Z",
		Pools: []model.PoolSnapshot{{
			RouterID:         "router-1",
			PoolID:           "sp-1",
			Kind:             model.PoolKindSwap,
			TokenID:          "usdc",
			TokenSymbol:      "USDC",
			TokenDecimals:    6,
			LPTokenDecimals:  6,
			Reserve:          reserve,
			TotalLiabilities: ptr("2000000"),
			TotalSupply:      "2000000",
			APR:              "0",
			InsuranceFeeBps:  ptr("10"),
			CoverageRatio:    ratio,
			BlockHeight:      120,
		}},
	}
}

func TestMigrateTwice(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestPutSnapshotsUpsertsByKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutSnapshots(ctx, []model.RouterSnapshot{testSnapshot("3000000", ptr("1.500000000000000000"))}))
	require.NoError(t, store.PutSnapshots(ctx, []model.RouterSnapshot{testSnapshot("4000000", nil)}))

	var count int
	require.NoError(t, store.pool.QueryRow(ctx, `SELECT count(*) FROM pool_snapshots`).Scan(&count))
	assert.Equal(t, 1, count)

	var (
		reserve     string
		liabilities *string
		ratio       *string
		blockTime   time.Time
		takenAt     time.Time
	)
	err := store.pool.QueryRow(ctx, `
		SELECT reserve::text, total_liabilities::text, coverage_ratio::text, block_time, taken_at
		FROM pool_snapshots
		WHERE router_id = $1 AND pool_id = $2 AND block_height = $3
	`, "router-1", "sp-1", int64(120)).Scan(&reserve, &liabilities, &ratio, &blockTime, &takenAt)
	require.NoError(t, err)

	assert.Equal(t, "4000000", reserve)
	require.NotNil(t, liabilities)
	assert.Equal(t, "2000000", *liabilities)
	assert.Nil(t, ratio)
	assert.True(t, blockTime.Equal(time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)), "block_time %s", blockTime)
	assert.True(t, takenAt.Equal(time.Date(2024, 2, 1, 10, 0, 5, 123456000, time.UTC)), "taken_at %s", takenAt)
}

func TestPutSnapshotsNewHeightAddsRow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	next := testSnapshot("3000000", nil)
	next.BlockHeight = 121
	next.Pools[0].BlockHeight = 121
	require.NoError(t, store.PutSnapshots(ctx, []model.RouterSnapshot{testSnapshot("3000000", nil), next}))
	require.NoError(t, store.PutSnapshots(ctx, nil))

	var count int
	require.NoError(t, store.pool.QueryRow(ctx, `SELECT count(*) FROM pool_snapshots WHERE pool_id = 'sp-1'`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestStateRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, ok, err := store.LoadState(ctx, "poller")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SaveState(ctx, "poller", State{Height: 120, BlockID: "0000000120-abcde"}))
	require.NoError(t, store.SaveState(ctx, "poller", State{Height: 121, BlockID: "0000000121-fghij"}))

	got, ok, err := store.LoadState(ctx, "poller")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, State{Height: 121, BlockID: "0000000121-fghij"}, got)

	_, ok, err = store.LoadState(ctx, "other")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Error(t, store.SaveState(ctx, "", State{}))
}
