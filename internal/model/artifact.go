// Package model decodes serialized CKD classifiers and runs inference on them.
package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kidneycare/backend/internal/domain"
)

// Format is the only artifact format version understood by Decode
const Format = "ckd-classifier/v1"

// Supported artifact kinds
const (
	KindGBTree   = "gbtree"
	KindLogistic = "logistic"
)

// Artifact is the on-disk representation of a trained classifier
type Artifact struct {
	Format       string       `json:"format"`
	Kind         string       `json:"kind"`
	FeatureNames []string     `json:"feature_names"`
	BaseScore    float64      `json:"base_score,omitempty"`
	Trees        [][]TreeNode `json:"trees,omitempty"`
	Coefficients []float64    `json:"coefficients,omitempty"`
	Intercept    float64      `json:"intercept,omitempty"`
}

// Load fetches the artifact from store and decodes it.
// Every failure is a *domain.ArtifactError.
func Load(ctx context.Context, store domain.ArtifactStore) (domain.Classifier, error) {
	payload, err := store.Fetch(ctx)
	if err != nil {
		return nil, &domain.ArtifactError{Source: store.Describe(), Err: err}
	}

	clf, err := Decode(payload)
	if err != nil {
		return nil, &domain.ArtifactError{Source: store.Describe(), Err: err}
	}

	return clf, nil
}

// Decode parses and validates a serialized classifier
func Decode(payload []byte) (domain.Classifier, error) {
	var a Artifact
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("model: failed to decode artifact: %w", err)
	}

	if a.Format != Format {
		return nil, fmt.Errorf("model: unsupported artifact format %q", a.Format)
	}
	if err := checkFeatureNames(a.FeatureNames); err != nil {
		return nil, err
	}

	switch a.Kind {
	case KindGBTree:
		return newGBTree(a.Trees, a.BaseScore, len(a.FeatureNames))
	case KindLogistic:
		return newLogistic(a.Coefficients, a.Intercept, len(a.FeatureNames))
	default:
		return nil, fmt.Errorf("model: unsupported classifier kind %q", a.Kind)
	}
}

// checkFeatureNames rejects artifacts trained on a different column order
func checkFeatureNames(names []string) error {
	want := domain.FeatureNames()
	if len(names) != len(want) {
		return fmt.Errorf("model: artifact has %d features, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			return fmt.Errorf("model: feature %d is %q, want %q", i, names[i], want[i])
		}
	}
	return nil
}

var errWrongLength = errors.New("feature vector length mismatch")

func checkLength(x []float64, n int) error {
	if len(x) != n {
		return fmt.Errorf("model: %w: got %d, want %d", errWrongLength, len(x), n)
	}
	return nil
}
