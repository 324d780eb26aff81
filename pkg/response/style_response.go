// Package response writes the JSON bodies the web client expects.
//
// Failures are always {"error": "..."} and plain acknowledgements are
// {"message": "..."}; payload-bearing successes are written as-is.
package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the error envelope.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the acknowledgement envelope.
type MessageBody struct {
	Message string `json:"message"`
}

// OK returns a 200 response with data as the body.
func OK(c *fiber.Ctx, data any) error {
	return c.JSON(data)
}

// Created returns a 201 response with data as the body.
func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Message returns a 200 acknowledgement.
func Message(c *fiber.Ctx, message string) error {
	return c.JSON(MessageBody{Message: message})
}

// Error returns an error response.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorBody{Error: message})
}

// ErrorWith returns an error response carrying extra top-level fields
// next to "error".
func ErrorWith(c *fiber.Ctx, status int, message string, extra map[string]any) error {
	body := fiber.Map{"error": message}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// InternalError returns a 500 internal server error response.
func InternalError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
