package model

import "github.com/kidneycare/backend/internal/domain"

// DecisionThreshold is the class-1 probability above which a vector is labelled CKD.
// Matches the binary:logistic convention: label 1 iff p1 > 0.5.
const DecisionThreshold = 0.5

// LabelFor applies DecisionThreshold to a class-1 probability
func LabelFor(p1 float64) int {
	if p1 > DecisionThreshold {
		return domain.LabelCKD
	}
	return domain.LabelNoCKD
}
