package handlers

import (
	"errors"
	"shop-api/app"
	"shop-api/database"
	"shop-api/models"
	"shop-api/response"
	"shop-api/router"

	"github.com/gofiber/fiber/v2"
)

func UnitRoutes(r *router.Router, a *app.App) {
	r.Post("/", CreateUnit(a))
	r.Get("/", ListUnits(a))
	r.Get("/:id", GetUnit(a))
	r.Put("/:id", UpdateUnit(a))
	r.Delete("/:id", DeleteUnit(a))
}

func CreateUnit(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		payload, err := decodeItems[models.CreateUnitRequest](a, c.Body())
		if err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error creating unit", err)
		}

		items := payload.Items()
		units := make([]models.Unit, len(items))
		for i, item := range items {
			units[i] = models.Unit{Name: item.Name}
		}

		stored, err := a.Repo.CreateUnits(c.UserContext(), units)
		if err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error creating unit", err)
		}

		return nil, created(c, "Unit created successfully", resultOf(payload, stored))
	}
}

// ListUnits returns all units with their products
func ListUnits(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		units, err := a.Repo.ListUnits(c.UserContext())
		if err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error fetching units", err)
		}
		return nil, success(c, units)
	}
}

func GetUnit(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		id, err := parseID(c)
		if err != nil {
			return nil, badRequest(c, "Invalid unit id")
		}

		unit, err := a.Repo.GetUnit(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, notFound(c, "Unit not found")
			}
			return nil, serverErrorWithDetails(c, a.Logger, "Error fetching unit", err)
		}

		return nil, success(c, unit)
	}
}

// UpdateUnit answers with the updated unit itself
func UpdateUnit(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		id, err := parseID(c)
		if err != nil {
			return nil, badRequest(c, "Invalid unit id")
		}

		var req models.UpdateUnitRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error updating unit", err)
		}
		if err := a.Validator.Validate(&req); err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error updating unit", err)
		}

		unit, err := a.Repo.UpdateUnit(c.UserContext(), id, req.Name)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, notFound(c, "Unit not found")
			}
			return nil, serverErrorWithDetails(c, a.Logger, "Error updating unit", err)
		}

		return nil, success(c, unit)
	}
}

func DeleteUnit(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		id, err := parseID(c)
		if err != nil {
			return nil, badRequest(c, "Invalid unit id")
		}

		if err := a.Repo.DeleteUnit(c.UserContext(), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, notFound(c, "Unit not found")
			}
			return nil, serverErrorWithDetails(c, a.Logger, "Error deleting unit", err)
		}

		return nil, success(c, fiber.Map{"message": "Unit deleted successfully"})
	}
}
