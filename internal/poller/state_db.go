package poller

import (
	"context"

	"rebalancer/internal/storage/postgres"
)

// DBStateStore stores the checkpoint in the rebalancer_state table.
type DBStateStore struct {
	Store *postgres.Store
	Name  string
}

func (s *DBStateStore) Load(ctx context.Context) (Checkpoint, bool, error) {
	if s == nil || s.Store == nil {
		return Checkpoint{}, false, nil
	}
	st, ok, err := s.Store.LoadState(ctx, s.Name)
	if err != nil || !ok {
		return Checkpoint{}, ok, err
	}
	return Checkpoint{Height: st.Height, BlockID: st.BlockID}, true, nil
}

func (s *DBStateStore) Save(ctx context.Context, cp Checkpoint) error {
	if s == nil || s.Store == nil {
		return nil
	}
	return s.Store.SaveState(ctx, s.Name, postgres.State{Height: cp.Height, BlockID: cp.BlockID})
}
