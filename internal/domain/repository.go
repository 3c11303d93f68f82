package domain

import (
	"context"
)

// Classifier is a loaded, read-only binary classifier.
// Implementations must not mutate state during inference.
type Classifier interface {
	// Kind names the artifact kind, e.g. "gbtree"
	Kind() string

	// NumFeatures is the vector length the classifier was trained on
	NumFeatures() int

	// Predict returns the class label for one vector
	Predict(x []float64) (int, error)

	// PredictProba returns [p(class 0), p(class 1)] for one vector
	PredictProba(x []float64) ([]float64, error)
}

// ArtifactStore defines where the serialized classifier is read from.
// The domain defines the interface; repositories implement it.
type ArtifactStore interface {
	// Fetch returns the raw artifact bytes
	Fetch(ctx context.Context) ([]byte, error)

	// Describe identifies the artifact location for logs and errors
	Describe() string
}
