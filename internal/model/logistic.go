package model

import (
	"fmt"

	"github.com/kidneycare/backend/pkg/utils"
)

// Logistic is a linear model with a sigmoid link
type Logistic struct {
	coefficients []float64
	intercept    float64
}

func newLogistic(coefficients []float64, intercept float64, features int) (*Logistic, error) {
	if len(coefficients) != features {
		return nil, fmt.Errorf("model: logistic artifact has %d coefficients, want %d", len(coefficients), features)
	}
	if !utils.AllFinite(coefficients) || !utils.AllFinite([]float64{intercept}) {
		return nil, fmt.Errorf("model: logistic artifact has non-finite weights")
	}
	return &Logistic{coefficients: coefficients, intercept: intercept}, nil
}

func (m *Logistic) Kind() string     { return KindLogistic }
func (m *Logistic) NumFeatures() int { return len(m.coefficients) }

func (m *Logistic) PredictProba(x []float64) ([]float64, error) {
	if err := checkLength(x, len(m.coefficients)); err != nil {
		return nil, err
	}
	z := m.intercept
	for i, w := range m.coefficients {
		z += w * x[i]
	}
	p1 := utils.Sigmoid(z)
	return []float64{1 - p1, p1}, nil
}

func (m *Logistic) Predict(x []float64) (int, error) {
	proba, err := m.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return LabelFor(proba[1]), nil
}
