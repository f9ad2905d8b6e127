package poller

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Checkpoint is the last indexed block the poller wrote snapshots for. The
// block id lets a replaced block at the same height be told apart.
type Checkpoint struct {
	Height  uint64
	BlockID string
}

// StateStore persists the poller checkpoint.
type StateStore interface {
	Load(ctx context.Context) (Checkpoint, bool, error)
	Save(ctx context.Context, cp Checkpoint) error
}

// FileStateStore stores the checkpoint in a local JSON file.
type FileStateStore struct {
	Path string
}

type stateRecord struct {
	Height    uint64 `json:"last_processed_height"`
	BlockID   string `json:"block_id,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

func (s *FileStateStore) Load(_ context.Context) (Checkpoint, bool, error) {
	if s == nil || s.Path == "" {
		return Checkpoint{}, false, nil
	}
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return Checkpoint{}, false, nil
	}
	if err != nil {
		return Checkpoint{}, false, fmt.Errorf("read state: %w", err)
	}

	var rec stateRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Checkpoint{}, false, fmt.Errorf("parse state %s: %w", s.Path, err)
	}
	return Checkpoint{Height: rec.Height, BlockID: rec.BlockID}, true, nil
}

// Save writes the checkpoint through a synced temp file in the same
// directory, then renames it over Path.
func (s *FileStateStore) Save(_ context.Context, cp Checkpoint) error {
	if s == nil || s.Path == "" {
		return nil
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	data, err := json.MarshalIndent(stateRecord{
		Height:    cp.Height,
		BlockID:   cp.BlockID,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create state tmp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write state tmp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync state tmp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state tmp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("rename state: %w", err)
	}
	return nil
}

// MemoryStateStore keeps the checkpoint for the lifetime of the process.
type MemoryStateStore struct {
	cp Checkpoint
	ok bool
}

func (s *MemoryStateStore) Load(context.Context) (Checkpoint, bool, error) {
	return s.cp, s.ok, nil
}

func (s *MemoryStateStore) Save(_ context.Context, cp Checkpoint) error {
	s.cp = cp
	s.ok = true
	return nil
}
