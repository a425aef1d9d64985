// Package storage reads and writes conversion artifacts. Every Store
// writes all-or-nothing: a failed write never leaves a truncated
// destination behind.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a source artifact does not exist.
var ErrNotFound = errors.New("artifact not found")

// Store reads and writes whole artifacts by path.
type Store interface {
	ReadAll(ctx context.Context, path string) ([]byte, error)
	WriteAll(ctx context.Context, path string, data []byte) error
}

// Default returns the store used by the command-line tools: local files
// and s3:// URIs, with transparent zstd for paths ending in ".zst".
func Default() Store {
	return NewZstd(NewMux())
}
