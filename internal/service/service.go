package service

import (
	"github.com/kidneycare/backend/internal/domain"
)

// ArtifactStore is re-exported from domain for convenience
type ArtifactStore = domain.ArtifactStore
