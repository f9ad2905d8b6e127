package storage

import (
	"context"

	"rebalancer/internal/model"
)

// Sink receives router snapshots.
type Sink interface {
	PutSnapshots(ctx context.Context, snapshots []model.RouterSnapshot) error
}
