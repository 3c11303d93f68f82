package http

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, handler *Handler) {
	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Form metadata
		api.Get("/features", handler.GetFeatures)

		// Prediction endpoints
		api.Post("/predict", handler.Predict)
		api.Post("/report", handler.DownloadReport)
	}
}
