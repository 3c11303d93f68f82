package service

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kidneycare/backend/internal/domain"
	"github.com/kidneycare/backend/pkg/utils"
)

// Invoker wraps the loaded classifier and exposes a single prediction operation.
// The classifier is never mutated, so results are cached by vector.
type Invoker struct {
	classifier domain.Classifier
	cache      *lru.Cache[domain.FeatureVector, domain.Prediction]
}

// NewInvoker creates an invoker. cacheSize 0 disables the result cache.
func NewInvoker(classifier domain.Classifier, cacheSize int) (*Invoker, error) {
	if classifier == nil {
		return nil, errors.New("inference: classifier is nil")
	}

	inv := &Invoker{classifier: classifier}
	if cacheSize > 0 {
		cache, err := lru.New[domain.FeatureVector, domain.Prediction](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("inference: failed to create cache: %w", err)
		}
		inv.cache = cache
	}

	return inv, nil
}

// Predict scores one feature vector.
// A vector the classifier cannot accept yields a *domain.InferenceError.
func (iv *Invoker) Predict(vector []float64) (domain.Prediction, error) {
	want := iv.classifier.NumFeatures()
	if len(vector) != want {
		return domain.Prediction{}, &domain.InferenceError{Reason: "feature count mismatch", Got: len(vector), Want: want}
	}
	if !utils.AllFinite(vector) {
		return domain.Prediction{}, &domain.InferenceError{Reason: "feature vector contains non-finite values"}
	}

	var key domain.FeatureVector
	cacheable := iv.cache != nil && want == domain.FeatureCount
	if cacheable {
		copy(key[:], vector)
		if p, ok := iv.cache.Get(key); ok {
			return p, nil
		}
	}

	label, err := iv.classifier.Predict(vector)
	if err != nil {
		return domain.Prediction{}, &domain.InferenceError{Reason: err.Error()}
	}
	proba, err := iv.classifier.PredictProba(vector)
	if err != nil {
		return domain.Prediction{}, &domain.InferenceError{Reason: err.Error()}
	}
	if len(proba) != 2 {
		return domain.Prediction{}, &domain.InferenceError{Reason: fmt.Sprintf("classifier returned %d class probabilities, want 2", len(proba))}
	}
	p1 := proba[1]
	if !utils.AllFinite(proba) || p1 < 0 || p1 > 1 {
		return domain.Prediction{}, &domain.InferenceError{Reason: fmt.Sprintf("classifier returned probability %v outside [0, 1]", p1)}
	}
	if label != domain.LabelNoCKD && label != domain.LabelCKD {
		return domain.Prediction{}, &domain.InferenceError{Reason: fmt.Sprintf("classifier returned label %d, want 0 or 1", label)}
	}

	p := domain.Prediction{Label: label, Probability: p1}
	if cacheable {
		iv.cache.Add(key, p)
	}

	return p, nil
}
