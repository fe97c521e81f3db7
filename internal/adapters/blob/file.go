// Package blob implements the local snapshot tier as a single file on disk.
package blob

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"conftrack/internal/domain"
)

type fileStore struct {
	path string
}

// NewFileStore returns a BlobStore backed by a single file. Writes go to a
// temp file in the same directory followed by a rename, so a reader never
// observes a partial snapshot.
func NewFileStore(path string) domain.BlobStore {
	return &fileStore{path: path}
}

func (s *fileStore) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrBlobNotFound
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return data, nil
}

func (s *fileStore) Write(ctx context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(name, s.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("replace snapshot file: %w", err)
	}
	return nil
}
