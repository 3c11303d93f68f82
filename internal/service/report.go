package service

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kidneycare/backend/internal/domain"
)

// Report download metadata
const (
	ReportFileName = "ckd_prediction_report.txt"
	ReportTitle    = "Chronic Kidney Disease (CKD) Prediction Report"
)

// ReportRenderer formats assessments as plain-text reports
type ReportRenderer struct {
	printer *message.Printer
}

// NewReportRenderer creates a renderer formatting numbers for the given language tag
func NewReportRenderer(lang string) (*ReportRenderer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("report: invalid language %q: %w", lang, err)
	}
	return &ReportRenderer{printer: message.NewPrinter(tag)}, nil
}

// Render builds the downloadable report text
func (r *ReportRenderer) Render(a domain.Assessment) string {
	var b strings.Builder

	b.WriteString(ReportTitle + "\n")
	b.WriteString(strings.Repeat("-", len(ReportTitle)) + "\n")
	b.WriteString("Result: " + a.Result + "\n")
	b.WriteString("CKD Probability: " + r.printer.Sprintf("%.2f", a.Probability*100) + "%\n")
	b.WriteString("\nDisclaimer: " + a.Disclaimer + "\n")

	return b.String()
}
