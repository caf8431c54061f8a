package handlers

import (
	"errors"
	"log/slog"
	"shop-api/app"
	"shop-api/middleware"
	"shop-api/schema"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var errInvalidID = errors.New("id must be a positive integer")

func success(c *fiber.Ctx, data any) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, message string, result any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message, "result": result})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func serverErrorWithDetails(c *fiber.Ctx, logger *slog.Logger, message string, err error) error {
	logger.Error("server error",
		"request_id", middleware.RequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// parseID reads the :id route param
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// decodeItems decodes a single-or-bulk body and validates every item
func decodeItems[T any](a *app.App, body []byte) (schema.Payload[T], error) {
	payload, err := schema.DecodePayload[T](body)
	if err != nil {
		return nil, err
	}

	for _, item := range payload.Items() {
		if err := a.Validator.Validate(item); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

// resultOf mirrors the request shape: one record for a single object, all of
// them for an array
func resultOf[T, R any](payload schema.Payload[T], records []R) any {
	if _, ok := payload.(schema.Single[T]); ok && len(records) == 1 {
		return records[0]
	}
	return records
}
