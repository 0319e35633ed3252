package storage

import (
	"context"
	"os"
	"path/filepath"

	"swiftprints/internal/usecase/interfaces"
)

// LocalStorage keeps blobs on the local filesystem under a base
// directory. Keys may contain slashes; subdirectories are created on
// demand.

type LocalStorage struct {
	baseDir string
}

var _ interfaces.IBlobStorage = (*LocalStorage)(nil)

func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

func (s *LocalStorage) Save(ctx context.Context, key string, data []byte) error {
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o640)
}

func (s *LocalStorage) Load(ctx context.Context, key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.baseDir, filepath.FromSlash(key)))
}
