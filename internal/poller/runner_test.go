package poller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebalancer/internal/gql"
	"rebalancer/internal/storage"
)

type fakeIndexer struct {
	mu          sync.Mutex
	height      int64
	blockID     string
	routers     map[string]gql.Router
	routerCalls int
	blockErr    error
}

func (f *fakeIndexer) GetLatestBlock(context.Context) (*gql.Block, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.blockErr != nil {
		return nil, f.blockErr
	}
	id := f.blockID
	if id == "" {
		id = fmt.Sprintf("%010d-aaaaa", f.height)
	}
	return &gql.Block{
		ID:        id,
		Height:    f.height,
		Timestamp: gql.NewDateTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}, nil
}

func (f *fakeIndexer) GetRouter(_ context.Context, id string) (*gql.Router, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routerCalls++
	router, ok := f.routers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &router, nil
}

func newFakeIndexer(height int64) *fakeIndexer {
	pool := gql.SwapPool{
		ID:               "pool",
		Token:            gql.NablaToken{ID: "usdc", Decimals: 6, Symbol: "USDC"},
		Reserve:          gql.BigIntFromInt64(2_000_000),
		TotalLiabilities: gql.BigIntFromInt64(1_000_000),
		LpTokenDecimals:  6,
	}
	return &fakeIndexer{
		height: height,
		routers: map[string]gql.Router{
			"r1": {ID: "r1", SwapPools: []gql.SwapPool{pool}},
			"r2": {ID: "r2"},
		},
	}
}

func TestTickWritesSnapshotsOnNewHeight(t *testing.T) {
	idx := newFakeIndexer(100)
	sink := &storage.MemorySink{}
	state := &MemoryStateStore{}
	runner := NewRunner(RunConfig{RouterIDs: []string{"r1", "r2"}}, idx, sink, state, nil)

	wrote, err := runner.Tick(context.Background())
	require.NoError(t, err)
	assert.True(t, wrote)
	require.Len(t, sink.Snapshots, 2)
	assert.Equal(t, "r1", sink.Snapshots[0].RouterID)
	assert.Equal(t, "r2", sink.Snapshots[1].RouterID)
	require.Len(t, sink.Snapshots[0].Pools, 1)
	require.NotNil(t, sink.Snapshots[0].Pools[0].CoverageRatio)
	assert.Equal(t, "2.000000000000000000", *sink.Snapshots[0].Pools[0].CoverageRatio)

	cp, ok, err := state.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Checkpoint{Height: 100, BlockID: "0000000100-aaaaa"}, cp)

	wrote, err = runner.Tick(context.Background())
	require.NoError(t, err)
	assert.False(t, wrote)
	assert.Len(t, sink.Snapshots, 2)
	assert.Equal(t, 2, idx.routerCalls)

	idx.height = 101
	wrote, err = runner.Tick(context.Background())
	require.NoError(t, err)
	assert.True(t, wrote)
	assert.Len(t, sink.Snapshots, 4)
}

func TestTickKeepsStateOnRouterFailure(t *testing.T) {
	idx := newFakeIndexer(50)
	sink := &storage.MemorySink{}
	state := &MemoryStateStore{}
	runner := NewRunner(RunConfig{RouterIDs: []string{"r1", "missing"}}, idx, sink, state, nil)

	_, err := runner.Tick(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
	assert.Empty(t, sink.Snapshots)

	_, ok, err := state.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRunOnceReturnsTickError(t *testing.T) {
	idx := newFakeIndexer(1)
	idx.blockErr = errors.New("indexer down")
	runner := NewRunner(RunConfig{RouterIDs: []string{"r1"}, Once: true}, idx, &storage.MemorySink{}, nil, nil)

	err := runner.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indexer down")
}

func TestRunStopsOnContextCancel(t *testing.T) {
	idx := newFakeIndexer(1)
	sink := &storage.MemorySink{}
	runner := NewRunner(RunConfig{RouterIDs: []string{"r1"}, Interval: time.Millisecond}, idx, sink, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := runner.Run(ctx)
	assert.True(t, IsShutdown(err))
	assert.Len(t, sink.Snapshots, 1)
}

func TestRunRequiresRouters(t *testing.T) {
	runner := NewRunner(RunConfig{}, newFakeIndexer(1), &storage.MemorySink{}, nil, nil)
	require.Error(t, runner.Run(context.Background()))
}

func TestFileStateStoreRoundTrip(t *testing.T) {
	store := &FileStateStore{Path: filepath.Join(t.TempDir(), "state", "poller.json")}

	_, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	want := Checkpoint{Height: 4242, BlockID: "0000004242-bbbbb"}
	require.NoError(t, store.Save(context.Background(), want))
	got, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(store.Path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not be left behind")
}

func TestFileStateStoreReadsHeightOnlyRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"last_processed_height":77,"updated_at":"2024-01-01T00:00:00Z"}`), 0o644))

	got, ok, err := (&FileStateStore{Path: path}).Load(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Checkpoint{Height: 77}, got)
}

func TestTickRewritesReplacedBlock(t *testing.T) {
	idx := newFakeIndexer(200)
	idx.blockID = "0000000200-aaaaa"
	sink := &storage.MemorySink{}
	state := &MemoryStateStore{}
	runner := NewRunner(RunConfig{RouterIDs: []string{"r1"}}, idx, sink, state, nil)

	wrote, err := runner.Tick(context.Background())
	require.NoError(t, err)
	assert.True(t, wrote)

	idx.blockID = "0000000200-bbbbb"
	wrote, err = runner.Tick(context.Background())
	require.NoError(t, err)
	assert.True(t, wrote)
	assert.Len(t, sink.Snapshots, 2)
	assert.Equal(t, "0000000200-bbbbb", sink.Snapshots[1].BlockID)

	cp, _, err := state.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0000000200-bbbbb", cp.BlockID)
}

func TestTickSkipsHeightBelowCheckpoint(t *testing.T) {
	idx := newFakeIndexer(90)
	sink := &storage.MemorySink{}
	state := &MemoryStateStore{}
	require.NoError(t, state.Save(context.Background(), Checkpoint{Height: 100, BlockID: "0000000100-aaaaa"}))
	runner := NewRunner(RunConfig{RouterIDs: []string{"r1"}}, idx, sink, state, nil)

	wrote, err := runner.Tick(context.Background())
	require.NoError(t, err)
	assert.False(t, wrote)
	assert.Empty(t, sink.Snapshots)
	assert.Zero(t, idx.routerCalls)
}
