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

// CategoryRoutes registers the category endpoints on r
func CategoryRoutes(r *router.Router, a *app.App) {
	r.Post("/", CreateCategory(a))
	r.Get("/", ListCategories(a))
	r.Get("/:id", GetCategory(a))
	r.Put("/:id", UpdateCategory(a))
	r.Delete("/:id", DeleteCategory(a))
}

// CreateCategory creates one category, or several from a JSON array
func CreateCategory(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		payload, err := decodeItems[models.CreateCategoryRequest](a, c.Body())
		if err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error creating category", err)
		}

		items := payload.Items()
		categories := make([]models.Category, len(items))
		for i, item := range items {
			categories[i] = models.Category{Name: item.Name}
		}

		stored, err := a.Repo.CreateCategories(c.UserContext(), categories)
		if err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error creating category", err)
		}

		return nil, created(c, "Category created successfully", resultOf(payload, stored))
	}
}

// ListCategories returns all categories; ?include=product adds their products
func ListCategories(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		withProducts := c.Query("include") == "product"

		categories, err := a.Repo.ListCategories(c.UserContext(), withProducts)
		if err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error fetching categories", err)
		}

		return nil, success(c, categories)
	}
}

func GetCategory(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		id, err := parseID(c)
		if err != nil {
			return nil, badRequest(c, "Invalid category id")
		}

		category, err := a.Repo.GetCategory(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, notFound(c, "Category not found")
			}
			return nil, serverErrorWithDetails(c, a.Logger, "Error fetching category", err)
		}

		return nil, success(c, category)
	}
}

func UpdateCategory(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		id, err := parseID(c)
		if err != nil {
			return nil, badRequest(c, "Invalid category id")
		}

		var req models.UpdateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error updating category", err)
		}
		if err := a.Validator.Validate(&req); err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error updating category", err)
		}

		category, err := a.Repo.UpdateCategory(c.UserContext(), id, req.Name)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, notFound(c, "Category not found")
			}
			return nil, serverErrorWithDetails(c, a.Logger, "Error updating category", err)
		}

		return nil, success(c, fiber.Map{"message": "Category updated successfully", "result": category})
	}
}

func DeleteCategory(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		id, err := parseID(c)
		if err != nil {
			return nil, badRequest(c, "Invalid category id")
		}

		if err := a.Repo.DeleteCategory(c.UserContext(), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, notFound(c, "Category not found")
			}
			return nil, serverErrorWithDetails(c, a.Logger, "Error deleting category", err)
		}

		return nil, success(c, fiber.Map{"message": "Category deleted successfully"})
	}
}
