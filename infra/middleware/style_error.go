package middleware

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"style_server/pkg/apperr"
	"style_server/pkg/logger"
	"style_server/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	requestIDLocal  = "request_id"
	msgBodyTooLarge = "Request body too large"
)

// ErrorHandler renders every error as {"error": message}. AppError details
// are merged into the body so callers can return them unchanged.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		requestID, _ := c.Locals(requestIDLocal).(string)
		log := logger.WithField("request_id", requestID)

		var (
			appErr   *apperr.AppError
			fiberErr *fiber.Error
		)

		switch {
		case errors.As(err, &appErr):
			log = log.WithField("error_code", appErr.Code)
			if appErr.Err != nil {
				log = log.WithError(appErr.Err)
			}
			if appErr.Status >= 500 {
				log.Error("Internal error: %s", appErr.Message)
			} else {
				log.Debug("Client error: %s", appErr.Message)
			}
			return response.ErrorWith(c, appErr.Status, appErr.Message, appErr.Details)

		case errors.As(err, &fiberErr) && fiberErr.Code == fiber.StatusRequestEntityTooLarge:
			log.Warn("Request body over limit: %s %s", c.Method(), c.Path())
			return response.Error(c, fiber.StatusBadRequest, msgBodyTooLarge)

		case errors.As(err, &fiberErr):
			return response.Error(c, fiberErr.Code, fiberErr.Message)

		case errors.Is(err, context.DeadlineExceeded):
			log.Warn("Request deadline exceeded: %s %s", c.Method(), c.Path())
			return response.Error(c, fiber.StatusGatewayTimeout, "Request timed out")

		default:
			log.WithError(err).Error("Unexpected error: %s %s", c.Method(), c.Path())
			return response.InternalError(c, "Internal server error")
		}
	}
}

// RequestID assigns X-Request-ID and carries it on the user context so
// logger.WithContext picks it up downstream.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(requestIDLocal, requestID)
		c.Set(fiber.HeaderXRequestID, requestID)
		c.SetUserContext(context.WithValue(c.UserContext(), logger.RequestIDKey, requestID))
		return c.Next()
	}
}

// RequestLogger logs each request once after the handler chain completes.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// run the error handler now so the logged status is the final one
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		requestID, _ := c.Locals(requestIDLocal).(string)
		status := c.Response().StatusCode()
		log := logger.WithFields(map[string]any{
			"request_id": requestID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"ip":         c.IP(),
		}).WithDuration(time.Since(start))

		switch {
		case status >= 500:
			log.Error("Request failed: %s %s -> %d", c.Method(), c.Path(), status)
		case status >= 400:
			log.Warn("Request error: %s %s -> %d", c.Method(), c.Path(), status)
		default:
			log.Info("Request completed: %s %s -> %d", c.Method(), c.Path(), status)
		}

		return nil
	}
}

// Recover turns a panic into a 500 response.
func Recover() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				requestID, _ := c.Locals(requestIDLocal).(string)
				logger.WithFields(map[string]any{
					"request_id": requestID,
					"panic":      fmt.Sprintf("%v", r),
					"path":       c.Path(),
					"method":     c.Method(),
					"stack":      string(debug.Stack()),
				}).Error("Panic recovered")

				err = apperr.Internal("Internal server error")
			}
		}()
		return c.Next()
	}
}
