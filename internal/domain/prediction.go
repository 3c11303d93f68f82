package domain

// Class labels produced by the classifier
const (
	LabelNoCKD = 0
	LabelCKD   = 1
)

// Disclaimer is attached to every assessment and report
const Disclaimer = "This tool is for educational/demo purposes only and not a substitute for professional medical advice. " +
	"Always consult qualified healthcare providers regarding your medical conditions."

// Prediction is the raw classifier output for one vector
type Prediction struct {
	Label       int     `json:"label"`
	Probability float64 `json:"probability"`
}

// Assessment is the prediction presented to the user
type Assessment struct {
	Label              int     `json:"label"`
	Result             string  `json:"result"`
	Probability        float64 `json:"probability"`
	ProbabilityPercent float64 `json:"probability_percent"`
	Disclaimer         string  `json:"disclaimer"`
}

// ResultText returns the human-readable result for a label
func ResultText(label int) string {
	if label == LabelNoCKD {
		return "No CKD"
	}
	return "CKD Detected"
}
