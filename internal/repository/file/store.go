package file

import (
	"context"
	"fmt"
	"os"
)

// Store implements domain.ArtifactStore for a classifier on local disk
type Store struct {
	path string
}

// NewStore creates a store reading the artifact at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Fetch reads the whole artifact file
func (s *Store) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("file: failed to read artifact: %w", err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("file: artifact %s is empty", s.path)
	}

	return payload, nil
}

// Describe returns the artifact path
func (s *Store) Describe() string {
	return "file:" + s.path
}
