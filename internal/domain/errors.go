package domain

import (
	"fmt"
	"strings"
)

// FieldProblem describes one rejected input field
type FieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when patient input falls outside the form domain
type ValidationError struct {
	Fields []FieldProblem
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return "invalid patient input: " + strings.Join(parts, "; ")
}

// InferenceError reports a feature vector the classifier cannot score.
// It is recoverable: the service keeps serving after returning it.
type InferenceError struct {
	Reason string
	Got    int
	Want   int
}

func (e *InferenceError) Error() string {
	if e.Want > 0 {
		return fmt.Sprintf("inference: %s (got %d features, want %d)", e.Reason, e.Got, e.Want)
	}
	return "inference: " + e.Reason
}

// ArtifactError reports a classifier artifact that is missing, corrupted or incompatible.
// It is fatal at startup.
type ArtifactError struct {
	Source string
	Err    error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("classifier artifact %s: %v", e.Source, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}
