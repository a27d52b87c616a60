package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalSink writes files under a directory on the local filesystem.
type LocalSink struct {
	dir string
}

func NewLocalSink(dir string) *LocalSink {
	if dir == "" {
		dir = "."
	}
	return &LocalSink{dir: dir}
}

func (s *LocalSink) Put(_ context.Context, name string, body []byte, _ string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", path, err)
	}
	return path, nil
}
