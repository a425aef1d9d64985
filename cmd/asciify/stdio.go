package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/wbrown/img2ascii/storage"
)

// stdioPath names stdin as a source and stdout as a destination.
const stdioPath = "-"

// stdioStore adds "-" to a store.
type stdioStore struct {
	storage.Store
	in  io.Reader
	out io.Writer
}

func newStdioStore(next storage.Store) *stdioStore {
	return &stdioStore{Store: next, in: os.Stdin, out: os.Stdout}
}

func (s *stdioStore) ReadAll(ctx context.Context, path string) ([]byte, error) {
	if path != stdioPath {
		return s.Store.ReadAll(ctx, path)
	}
	data, err := io.ReadAll(s.in)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

func (s *stdioStore) WriteAll(ctx context.Context, path string, data []byte) error {
	if path != stdioPath {
		return s.Store.WriteAll(ctx, path, data)
	}
	if _, err := s.out.Write(data); err != nil {
		return fmt.Errorf("failed to write stdout: %w", err)
	}
	return nil
}
