package storage

import (
	"context"
	"fmt"

	"rebalancer/internal/model"
)

// MultiSink writes to every sink in order and stops at the first failure.
type MultiSink []Sink

func (m MultiSink) PutSnapshots(ctx context.Context, snapshots []model.RouterSnapshot) error {
	for i, sink := range m {
		if sink == nil {
			continue
		}
		if err := sink.PutSnapshots(ctx, snapshots); err != nil {
			return fmt.Errorf("sink %d: %w", i, err)
		}
	}
	return nil
}

// MemorySink keeps snapshots in memory.
type MemorySink struct {
	Snapshots []model.RouterSnapshot
}

func (m *MemorySink) PutSnapshots(_ context.Context, snapshots []model.RouterSnapshot) error {
	m.Snapshots = append(m.Snapshots, snapshots...)
	return nil
}
