package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kidneycare/backend/internal/domain"
)

// NewErrorHandler maps handler errors to JSON bodies.
// Validation and inference failures are recoverable and leave the service serving.
func NewErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *fiber.Ctx, err error) error {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   true,
				"message": "Invalid patient input",
				"fields":  verr.Fields,
			})
		}

		var ierr *domain.InferenceError
		if errors.As(err, &ierr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   true,
				"message": "Prediction unavailable: " + ierr.Error(),
			})
		}

		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			code = ferr.Code
			message = ferr.Message
		} else {
			logger.Error("request failed",
				zap.Error(err),
				zap.String("path", c.Path()),
				zap.Any("request_id", c.Locals("requestid")),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error":   true,
			"message": message,
		})
	}
}
