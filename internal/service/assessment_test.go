package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kidneycare/backend/internal/domain"
)

type fixedPredictor struct {
	prediction domain.Prediction
	err        error
	got        []float64
}

func (f *fixedPredictor) Predict(vector []float64) (domain.Prediction, error) {
	f.got = vector
	return f.prediction, f.err
}

func TestAssessPresentsPrediction(t *testing.T) {
	pred := &fixedPredictor{prediction: domain.Prediction{Label: domain.LabelCKD, Probability: 0.87654}}
	svc := NewAssessmentService(pred, nil)

	a, err := svc.Assess(context.Background(), baseInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Result != "CKD Detected" || a.Label != domain.LabelCKD {
		t.Fatalf("unexpected result: %+v", a)
	}
	if a.ProbabilityPercent != 87.65 {
		t.Fatalf("expected 87.65%%, got %v", a.ProbabilityPercent)
	}
	if a.Disclaimer == "" {
		t.Fatal("expected disclaimer")
	}
	if len(pred.got) != domain.FeatureCount || pred.got[domain.PosSpecificGravity] != 1.020 {
		t.Fatalf("predictor received unexpected vector: %v", pred.got)
	}
}

func TestAssessRejectsInvalidInput(t *testing.T) {
	pred := &fixedPredictor{}
	svc := NewAssessmentService(pred, nil)

	in := baseInput()
	in.SpecificGravity = 1.2
	_, err := svc.Assess(context.Background(), in)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if pred.got != nil {
		t.Fatal("predictor must not run on invalid input")
	}
}

func TestAssessSurfacesInferenceError(t *testing.T) {
	pred := &fixedPredictor{err: &domain.InferenceError{Reason: "feature count mismatch", Got: 14, Want: 15}}
	svc := NewAssessmentService(pred, nil)

	_, err := svc.Assess(context.Background(), baseInput())
	var ierr *domain.InferenceError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected InferenceError, got %v", err)
	}
}

func TestAssessHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAssessmentService(&fixedPredictor{}, nil).Assess(ctx, baseInput())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderReport(t *testing.T) {
	r, err := NewReportRenderer("en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := r.Render(domain.Assessment{
		Label:       domain.LabelNoCKD,
		Result:      domain.ResultText(domain.LabelNoCKD),
		Probability: 0.04742587,
		Disclaimer:  domain.Disclaimer,
	})

	for _, want := range []string{
		ReportTitle + "\n" + strings.Repeat("-", 46) + "\n",
		"Result: No CKD\n",
		"CKD Probability: 4.74%\n",
		"Disclaimer: This tool is for educational/demo purposes only",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("report missing %q:\n%s", want, text)
		}
	}
}

func TestRenderReportLocalisesNumbers(t *testing.T) {
	r, err := NewReportRenderer("de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := r.Render(domain.Assessment{Result: "CKD Detected", Probability: 0.9781})
	if !strings.Contains(text, "CKD Probability: 97,81%") {
		t.Fatalf("expected German decimal separator:\n%s", text)
	}

	if _, err := NewReportRenderer("not a language!"); err == nil {
		t.Fatal("expected error for invalid language tag")
	}
}
