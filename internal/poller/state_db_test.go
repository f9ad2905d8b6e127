package poller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebalancer/internal/storage/postgres"
	"rebalancer/internal/storage/postgres/pgtest"
)

func TestDBStateStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := postgres.NewStore(ctx, pgtest.DSN(t))
	require.NoError(t, err)
	t.Cleanup(store.Close)
	require.NoError(t, store.Migrate(ctx))

	state := &DBStateStore{Store: store, Name: "poller-test"}
	_, ok, err := state.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	want := Checkpoint{Height: 512, BlockID: "0000000512-ccccc"}
	require.NoError(t, state.Save(ctx, want))

	got, ok, err := state.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestDBStateStoreWithoutStore(t *testing.T) {
	var state *DBStateStore
	_, ok, err := state.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, state.Save(context.Background(), Checkpoint{Height: 1}))
}
