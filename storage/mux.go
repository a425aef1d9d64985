package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Factory builds an S3 client on first use.
type S3Factory func(ctx context.Context) (S3API, error)

// Mux routes s3:// URIs to an S3 store and every other path to a local
// store. The S3 client is only built when an s3:// path is first used, so
// local conversions never need AWS credentials.
type Mux struct {
	local   Store
	factory S3Factory

	mu     sync.Mutex
	remote Store
}

// MuxOption is a functional option for configuring a Mux.
type MuxOption func(*Mux)

// WithLocal replaces the store used for filesystem paths.
func WithLocal(s Store) MuxOption {
	return func(m *Mux) {
		m.local = s
	}
}

// WithS3 sets a ready-made store for s3:// paths.
func WithS3(s Store) MuxOption {
	return func(m *Mux) {
		m.remote = s
	}
}

// WithS3Factory sets how the S3 client is built.
func WithS3Factory(f S3Factory) MuxOption {
	return func(m *Mux) {
		m.factory = f
	}
}

// NewMux creates a Mux. By default the S3 client comes from the shared
// AWS configuration (environment, profile, instance role).
func NewMux(opts ...MuxOption) *Mux {
	m := &Mux{
		local:   NewLocal(),
		factory: defaultS3Client,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func defaultS3Client(ctx context.Context) (S3API, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

func (m *Mux) route(ctx context.Context, path string) (Store, error) {
	if !IsS3URI(path) {
		return m.local, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.remote == nil {
		client, err := m.factory(ctx)
		if err != nil {
			return nil, err
		}
		m.remote = NewS3(client)
	}
	return m.remote, nil
}

// ReadAll reads path from the store that owns it.
func (m *Mux) ReadAll(ctx context.Context, path string) ([]byte, error) {
	s, err := m.route(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.ReadAll(ctx, path)
}

// WriteAll writes path to the store that owns it.
func (m *Mux) WriteAll(ctx context.Context, path string, data []byte) error {
	s, err := m.route(ctx, path)
	if err != nil {
		return err
	}
	return s.WriteAll(ctx, path, data)
}
