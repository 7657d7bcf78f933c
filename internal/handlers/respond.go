package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pasar/internal/apperr"
)

// statusFor translates the service error taxonomy into HTTP status codes.
// The translation lives here so services never see transport concerns.
func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindConflict:
		return fiber.StatusConflict
	case apperr.KindInvalidOperation, apperr.KindInvalidArgument:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the standard error envelope for a service failure.
func respondError(c *fiber.Ctx, message string, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
