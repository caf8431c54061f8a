package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"shop-api/response"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the terminal error stage. Status comes from *response.Error or
// *fiber.Error, otherwise 500. The stack trace is only exposed in development.
func ErrorHandler(logger *slog.Logger, development bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if status := statusOf(err); status != 0 {
			code = status
		}

		kind := response.KindInternal
		var appErr *response.Error
		if errors.As(err, &appErr) {
			kind = appErr.Kind
		}

		body := response.ErrorBody{
			Message: err.Error(),
			Success: false,
		}
		if development {
			body.TraceStack = traceStack(err, appErr)
		}

		level := slog.LevelError
		if code < fiber.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(c.Context(), level, "request failed",
			"request_id", RequestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"kind", kind.String(),
			"error", err,
		)

		if jsonErr := c.Status(code).JSON(body); jsonErr != nil {
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			_ = c.Status(code).SendString(body.Message)
		}
		return nil
	}
}

// statusOf returns the status an error maps to, or 0 for unrecognized errors
func statusOf(err error) int {
	var appErr *response.Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return 0
}

func traceStack(err error, appErr *response.Error) string {
	if appErr != nil {
		return fmt.Sprintf("%s: %s\n%s", appErr.Kind, appErr.Message, appErr.Stack())
	}
	return fmt.Sprintf("%+v", err)
}
