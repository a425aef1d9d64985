package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdExt marks artifacts stored zstd-compressed.
const ZstdExt = ".zst"

// Zstd compresses artifacts whose path ends in ".zst" and passes every
// other path straight through to the wrapped store.
type Zstd struct {
	next Store

	once sync.Once
	enc  *zstd.Encoder
	dec  *zstd.Decoder
	err  error
}

// NewZstd wraps next.
func NewZstd(next Store) *Zstd {
	return &Zstd{next: next}
}

// IsZstd reports whether path names a compressed artifact.
func IsZstd(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ZstdExt)
}

func (z *Zstd) init() error {
	z.once.Do(func() {
		z.enc, z.err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if z.err != nil {
			return
		}
		z.dec, z.err = zstd.NewReader(nil)
	})
	return z.err
}

// ReadAll reads path and decompresses it when it ends in ".zst".
func (z *Zstd) ReadAll(ctx context.Context, path string) ([]byte, error) {
	data, err := z.next.ReadAll(ctx, path)
	if err != nil || !IsZstd(path) {
		return data, err
	}
	if err := z.init(); err != nil {
		return nil, err
	}
	out, err := z.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	return out, nil
}

// WriteAll compresses data when path ends in ".zst" and writes it.
func (z *Zstd) WriteAll(ctx context.Context, path string, data []byte) error {
	if IsZstd(path) {
		if err := z.init(); err != nil {
			return err
		}
		data = z.enc.EncodeAll(data, make([]byte, 0, len(data)/2))
	}
	return z.next.WriteAll(ctx, path, data)
}
