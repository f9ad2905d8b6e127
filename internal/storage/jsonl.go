package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"rebalancer/internal/model"
)

// JsonlStorage appends router snapshots to a JSONL file, one snapshot per
// line. A batch is encoded completely before the file is touched, so a batch
// that fails to encode leaves no partial lines behind.
type JsonlStorage struct {
	path string
	mu   sync.Mutex
}

func NewJsonlStorage(path string) *JsonlStorage {
	return &JsonlStorage{path: path}
}

// Path returns the output file.
func (s *JsonlStorage) Path() string {
	return s.path
}

func (s *JsonlStorage) PutSnapshots(ctx context.Context, snapshots []model.RouterSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, snap := range snapshots {
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode snapshot %s@%d: %w", snap.RouterID, snap.BlockHeight, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		file.Close()
		return fmt.Errorf("append snapshots: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("sync output: %w", err)
	}
	return file.Close()
}
