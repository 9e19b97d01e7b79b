package repo

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FilesystemStorage implements Storage using a local data directory.
type FilesystemStorage struct {
	baseDir string
	mu      sync.RWMutex
}

// NewFilesystemStorage creates a new filesystem-backed storage.
func NewFilesystemStorage(baseDir string) (*FilesystemStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &FilesystemStorage{baseDir: baseDir}, nil
}

func (f *FilesystemStorage) Write(_ context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (f *FilesystemStorage) Read(_ context.Context, key string) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	path, err := f.path(key)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (f *FilesystemStorage) Close() error {
	return nil
}

// path keeps keys inside the base directory
func (f *FilesystemStorage) path(key string) (string, error) {
	if !filepath.IsLocal(key) {
		return "", errors.Errorf("invalid key %q", key)
	}
	return filepath.Join(f.baseDir, key), nil
}
