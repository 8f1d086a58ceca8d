package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrNotFound marks a lookup that matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks a request body or parameter that failed validation.
	ErrInvalidInput = errors.New("invalid input")
)

// StatusFor maps an error to the HTTP status a handler should answer with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorResponse writes err as {"error": ...} with the status from StatusFor.
func ErrorResponse(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
