package utils

import (
	"math"
)

// Clamp limits a value between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundTo rounds a float to specified decimal places
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// Sigmoid maps a log-odds margin to a probability
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	// keeps exp from overflowing for large negative margins
	e := math.Exp(x)
	return e / (1 + e)
}

// Logit is the inverse of Sigmoid. p must be in (0, 1).
func Logit(p float64) float64 {
	return math.Log(p / (1 - p))
}

// AllFinite reports whether no element is NaN or infinite
func AllFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
