package domain

import (
	"math"
	"sort"
)

// FeatureCount is the number of positions the classifier was trained on
const FeatureCount = 14

// Feature positions in the vector. The order matches the training data and must not change.
const (
	PosSpecificGravity = iota
	PosAlbumin
	PosSugar
	PosRedBloodCells
	PosPusCell
	PosBloodUrea
	PosSerumCreatinine
	PosHemoglobin
	PosPackedCellVolume
	PosRedBloodCellCount
	PosHypertension
	PosDiabetesMellitus
	PosAppetite
	PosPedalEdema
)

// Specific gravity bounds accepted by the input form
const (
	MinSpecificGravity = 1.000
	MaxSpecificGravity = 1.030
)

// Categorical option values
const (
	Normal   = "normal"
	Abnormal = "abnormal"
	Yes      = "yes"
	No       = "no"
	Good     = "good"
	Poor     = "poor"
)

// FeatureVector is the encoded, fixed-order input of the classifier
type FeatureVector [FeatureCount]float64

// FeatureNames returns the feature keys in vector order
func FeatureNames() []string {
	return []string{
		"sg", "al", "su", "rbc", "pc",
		"bu", "sc", "hemo", "pcv", "rc",
		"htn", "dm", "appet", "pe",
	}
}

// PatientInput represents raw values entered by the user
type PatientInput struct {
	SpecificGravity   float64 `json:"sg"`
	Albumin           int     `json:"al"`
	Sugar             int     `json:"su"`
	RedBloodCells     string  `json:"rbc"`
	PusCell           string  `json:"pc"`
	BloodUrea         float64 `json:"bu"`
	SerumCreatinine   float64 `json:"sc"`
	Hemoglobin        float64 `json:"hemo"`
	PackedCellVolume  int     `json:"pcv"`
	RedBloodCellCount float64 `json:"rc"`
	Hypertension      string  `json:"htn"`
	DiabetesMellitus  string  `json:"dm"`
	Appetite          string  `json:"appet"`
	PedalEdema        string  `json:"pe"`
}

// Validate checks every field against the domain of the input form.
// All offending fields are reported at once.
func (p PatientInput) Validate() error {
	problems := make(map[string]string)

	if !finite(p.SpecificGravity) || p.SpecificGravity < MinSpecificGravity || p.SpecificGravity > MaxSpecificGravity {
		problems["sg"] = "must be between 1.000 and 1.030"
	}

	for key, v := range map[string]int{"al": p.Albumin, "su": p.Sugar, "pcv": p.PackedCellVolume} {
		if v < 0 {
			problems[key] = "must be a non-negative integer"
		}
	}

	for key, v := range map[string]float64{
		"bu":   p.BloodUrea,
		"sc":   p.SerumCreatinine,
		"hemo": p.Hemoglobin,
		"rc":   p.RedBloodCellCount,
	} {
		if !finite(v) || v < 0 {
			problems[key] = "must be a non-negative number"
		}
	}

	for _, c := range []struct {
		key, value string
		options    []string
	}{
		{"rbc", p.RedBloodCells, []string{Normal, Abnormal}},
		{"pc", p.PusCell, []string{Normal, Abnormal}},
		{"htn", p.Hypertension, []string{Yes, No}},
		{"dm", p.DiabetesMellitus, []string{Yes, No}},
		{"appet", p.Appetite, []string{Good, Poor}},
		{"pe", p.PedalEdema, []string{Yes, No}},
	} {
		if c.value != c.options[0] && c.value != c.options[1] {
			problems[c.key] = "must be one of " + c.options[0] + ", " + c.options[1]
		}
	}

	if len(problems) == 0 {
		return nil
	}

	fields := make([]FieldProblem, 0, len(problems))
	for key, msg := range problems {
		fields = append(fields, FieldProblem{Field: key, Message: msg})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })

	return &ValidationError{Fields: fields}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
