package service

import (
	"github.com/kidneycare/backend/internal/domain"
)

// EncodeFeatures maps raw patient input to the classifier's feature vector.
// Numeric fields pass through unchanged; each categorical field becomes 1 when it
// equals its positive label and 0 otherwise. The function performs no validation.
func EncodeFeatures(in domain.PatientInput) domain.FeatureVector {
	var v domain.FeatureVector

	v[domain.PosSpecificGravity] = in.SpecificGravity
	v[domain.PosAlbumin] = float64(in.Albumin)
	v[domain.PosSugar] = float64(in.Sugar)
	v[domain.PosRedBloodCells] = encodeCategory(in.RedBloodCells, domain.Abnormal)
	v[domain.PosPusCell] = encodeCategory(in.PusCell, domain.Abnormal)
	v[domain.PosBloodUrea] = in.BloodUrea
	v[domain.PosSerumCreatinine] = in.SerumCreatinine
	v[domain.PosHemoglobin] = in.Hemoglobin
	v[domain.PosPackedCellVolume] = float64(in.PackedCellVolume)
	v[domain.PosRedBloodCellCount] = in.RedBloodCellCount
	v[domain.PosHypertension] = encodeCategory(in.Hypertension, domain.Yes)
	v[domain.PosDiabetesMellitus] = encodeCategory(in.DiabetesMellitus, domain.Yes)
	v[domain.PosAppetite] = encodeCategory(in.Appetite, domain.Poor)
	v[domain.PosPedalEdema] = encodeCategory(in.PedalEdema, domain.Yes)

	return v
}

func encodeCategory(value, positive string) float64 {
	if value == positive {
		return 1
	}
	return 0
}
