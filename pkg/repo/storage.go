package repo

import (
	"context"
)

// Storage defines the contract for document backends, used both as a data source and as an export target.
// Implementations must be safe for concurrent use.
type Storage interface {
	// Write stores data with the given key.
	Write(ctx context.Context, key string, data []byte) error

	// Read retrieves data for the given key.
	// Returns os.ErrNotExist if the key does not exist.
	Read(ctx context.Context, key string) ([]byte, error)

	// Close releases any resources held by the storage backend.
	Close() error
}
