package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// DefaultTable holds serialized classifiers keyed by name
const DefaultTable = "classifier_artifacts"

// Querier is the subset of *pgxpool.Pool used by the store
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ArtifactStore implements domain.ArtifactStore on top of PostgreSQL
type ArtifactStore struct {
	db   Querier
	name string
}

// NewArtifactStore creates a store reading the artifact registered under name
func NewArtifactStore(db Querier, name string) *ArtifactStore {
	return &ArtifactStore{db: db, name: name}
}

// Fetch reads the artifact payload from PostgreSQL
func (s *ArtifactStore) Fetch(ctx context.Context) ([]byte, error) {
	query := `
		SELECT payload
		FROM ` + DefaultTable + `
		WHERE name = $1
	`

	var payload []byte
	err := s.db.QueryRow(ctx, query, s.name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("postgres: no artifact named %q", s.name)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query artifact: %w", err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("postgres: artifact %q is empty", s.name)
	}

	return payload, nil
}

// Describe identifies the artifact row
func (s *ArtifactStore) Describe() string {
	return "postgres:" + DefaultTable + "/" + s.name
}
