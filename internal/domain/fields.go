package domain

// Field kinds
const (
	KindNumber  = "number"
	KindInteger = "integer"
	KindChoice  = "choice"
)

// Field describes one form input and how it is bounded
type Field struct {
	Key         string   `json:"key"`
	Position    int      `json:"position"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Kind        string   `json:"kind"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Step        float64  `json:"step,omitempty"`
	Format      string   `json:"format,omitempty"`
	Options     []string `json:"options,omitempty"`
	Positive    string   `json:"positive,omitempty"`
}

func bound(v float64) *float64 { return &v }

// Fields returns the form catalogue in feature vector order
func Fields() []Field {
	return []Field{
		{Key: "sg", Position: PosSpecificGravity, Label: "Specific Gravity", Description: "Concentration of urine.",
			Kind: KindNumber, Min: bound(MinSpecificGravity), Max: bound(MaxSpecificGravity), Step: 0.001, Format: "%.3f"},
		{Key: "al", Position: PosAlbumin, Label: "Albumin", Description: "Protein levels in urine.",
			Kind: KindInteger, Min: bound(0), Step: 1},
		{Key: "su", Position: PosSugar, Label: "Sugar", Description: "Glucose in urine.",
			Kind: KindInteger, Min: bound(0), Step: 1},
		{Key: "rbc", Position: PosRedBloodCells, Label: "Red Blood Cells", Description: "Normal or abnormal presence.",
			Kind: KindChoice, Options: []string{Normal, Abnormal}, Positive: Abnormal},
		{Key: "pc", Position: PosPusCell, Label: "Pus Cell", Description: "Infection indicator.",
			Kind: KindChoice, Options: []string{Normal, Abnormal}, Positive: Abnormal},
		{Key: "bu", Position: PosBloodUrea, Label: "Blood Urea", Description: "Waste filtered by kidneys.",
			Kind: KindNumber, Min: bound(0), Step: 0.1},
		{Key: "sc", Position: PosSerumCreatinine, Label: "Serum Creatinine", Description: "Waste level in blood.",
			Kind: KindNumber, Min: bound(0), Step: 0.1},
		{Key: "hemo", Position: PosHemoglobin, Label: "Hemoglobin", Description: "Red blood cell protein.",
			Kind: KindNumber, Min: bound(0), Step: 0.1},
		{Key: "pcv", Position: PosPackedCellVolume, Label: "Packed Cell Volume", Description: "% of blood occupied by cells.",
			Kind: KindInteger, Min: bound(0), Step: 1},
		{Key: "rc", Position: PosRedBloodCellCount, Label: "Red Blood Cell Count", Description: "Red blood cell count.",
			Kind: KindNumber, Min: bound(0), Step: 0.01},
		{Key: "htn", Position: PosHypertension, Label: "Hypertension", Description: "High blood pressure.",
			Kind: KindChoice, Options: []string{Yes, No}, Positive: Yes},
		{Key: "dm", Position: PosDiabetesMellitus, Label: "Diabetes Mellitus", Description: "Diabetes history.",
			Kind: KindChoice, Options: []string{Yes, No}, Positive: Yes},
		{Key: "appet", Position: PosAppetite, Label: "Appetite", Description: "Good or poor.",
			Kind: KindChoice, Options: []string{Good, Poor}, Positive: Poor},
		{Key: "pe", Position: PosPedalEdema, Label: "Pedal Edema", Description: "Fluid retention/swelling.",
			Kind: KindChoice, Options: []string{Yes, No}, Positive: Yes},
	}
}
