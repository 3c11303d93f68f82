package service

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/kidneycare/backend/internal/domain"
	"github.com/kidneycare/backend/internal/model"
)

// stubClassifier scores by hemoglobin: p1 falls as hemo rises
type stubClassifier struct {
	calls int
	proba []float64
	label *int
}

func (s *stubClassifier) Kind() string     { return "stub" }
func (s *stubClassifier) NumFeatures() int { return domain.FeatureCount }

func (s *stubClassifier) p1(x []float64) float64 {
	p := 1 - x[domain.PosHemoglobin]/20
	if p < 0 {
		return 0
	}
	return p
}

func (s *stubClassifier) Predict(x []float64) (int, error) {
	s.calls++
	if s.label != nil {
		return *s.label, nil
	}
	return model.LabelFor(s.p1(x)), nil
}

func (s *stubClassifier) PredictProba(x []float64) ([]float64, error) {
	if s.proba != nil {
		return s.proba, nil
	}
	p := s.p1(x)
	return []float64{1 - p, p}, nil
}

func vectorWithHemo(hemo float64) []float64 {
	in := baseInput()
	in.Hemoglobin = hemo
	v := EncodeFeatures(in)
	return v[:]
}

func TestPredictRejectsShortVector(t *testing.T) {
	inv, err := NewInvoker(&stubClassifier{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = inv.Predict(vectorWithHemo(12)[:13])
	var ierr *domain.InferenceError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected InferenceError, got %v", err)
	}
	if ierr.Got != 13 || ierr.Want != 14 {
		t.Fatalf("unexpected counts: %+v", ierr)
	}

	// the invoker stays usable
	if _, err := inv.Predict(vectorWithHemo(12)); err != nil {
		t.Fatalf("unexpected error after recoverable failure: %v", err)
	}
}

func TestPredictDeterministicAndBounded(t *testing.T) {
	inv, _ := NewInvoker(&stubClassifier{}, 0)

	for _, hemo := range []float64{0, 5, 10, 15, 25} {
		v := vectorWithHemo(hemo)
		first, err := inv.Predict(v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, _ := inv.Predict(v)
		if first != second {
			t.Fatalf("hemo %v: results differ: %+v vs %+v", hemo, first, second)
		}
		if first.Probability < 0 || first.Probability > 1 {
			t.Fatalf("hemo %v: probability out of range: %v", hemo, first.Probability)
		}
		if first.Probability < model.DecisionThreshold && first.Label != domain.LabelNoCKD {
			t.Fatalf("hemo %v: label %d with probability %v", hemo, first.Label, first.Probability)
		}
	}
}

func TestPredictUsesCache(t *testing.T) {
	stub := &stubClassifier{}
	inv, _ := NewInvoker(stub, 8)

	v := vectorWithHemo(9)
	for i := 0; i < 3; i++ {
		if _, err := inv.Predict(v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if stub.calls != 1 {
		t.Fatalf("expected one classifier call, got %d", stub.calls)
	}

	if _, err := inv.Predict(vectorWithHemo(10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.calls != 2 {
		t.Fatalf("expected a new vector to reach the classifier, got %d calls", stub.calls)
	}
}

func TestPredictRejectsBadClassifierOutput(t *testing.T) {
	two := 2
	tests := []struct {
		name    string
		stub    *stubClassifier
		vector  []float64
		wantErr string
	}{
		{"proba length", &stubClassifier{proba: []float64{1}}, vectorWithHemo(10), "class probabilities"},
		{"proba range", &stubClassifier{proba: []float64{-0.2, 1.2}}, vectorWithHemo(10), "outside [0, 1]"},
		{"label", &stubClassifier{label: &two}, vectorWithHemo(10), "label 2"},
		{"nan input", &stubClassifier{}, append(vectorWithHemo(10)[:13], math.NaN()), "non-finite"},
	}
	for _, tt := range tests {
		inv, _ := NewInvoker(tt.stub, 0)
		_, err := inv.Predict(tt.vector)
		var ierr *domain.InferenceError
		if !errors.As(err, &ierr) || !strings.Contains(err.Error(), tt.wantErr) {
			t.Fatalf("%s: expected InferenceError containing %q, got %v", tt.name, tt.wantErr, err)
		}
	}
}

func TestNewInvokerRequiresClassifier(t *testing.T) {
	if _, err := NewInvoker(nil, 0); err == nil {
		t.Fatal("expected error for nil classifier")
	}
}
