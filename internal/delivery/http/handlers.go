package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kidneycare/backend/internal/domain"
	"github.com/kidneycare/backend/internal/service"
)

// ClassifierInfo describes the loaded classifier for the health endpoint
type ClassifierInfo struct {
	Kind     string `json:"kind"`
	Features int    `json:"features"`
	Source   string `json:"source"`
}

// Handler contains all HTTP handlers
type Handler struct {
	assessments *service.AssessmentService
	reports     *service.ReportRenderer
	classifier  ClassifierInfo
}

// NewHandler creates a new handler
func NewHandler(assessments *service.AssessmentService, reports *service.ReportRenderer, classifier ClassifierInfo) *Handler {
	return &Handler{
		assessments: assessments,
		reports:     reports,
		classifier:  classifier,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "ok",
		"service":    "ckd-prediction",
		"version":    "1.0.0",
		"classifier": h.classifier,
	})
}

// GetFeatures returns the input form catalogue in feature order
func (h *Handler) GetFeatures(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    domain.Fields(),
	})
}

// Predict encodes the submitted measurements and returns the CKD prediction
func (h *Handler) Predict(c *fiber.Ctx) error {
	assessment, err := h.assess(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    assessment,
	})
}

// DownloadReport returns the prediction as a plain-text attachment
func (h *Handler) DownloadReport(c *fiber.Ctx) error {
	assessment, err := h.assess(c)
	if err != nil {
		return err
	}

	c.Attachment(service.ReportFileName)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(h.reports.Render(assessment))
}

func (h *Handler) assess(c *fiber.Ctx) (domain.Assessment, error) {
	var in domain.PatientInput
	if err := c.BodyParser(&in); err != nil {
		return domain.Assessment{}, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	return h.assessments.Assess(c.UserContext(), in)
}
