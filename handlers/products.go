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

func ProductRoutes(r *router.Router, a *app.App) {
	r.Post("/", CreateProduct(a))
	r.Get("/", ListProducts(a))
	r.Get("/:id", GetProduct(a))
	r.Put("/:id", UpdateProduct(a))
	r.Delete("/:id", DeleteProduct(a))
}

// CreateProduct stores one product or a batch; a batch referencing an unknown
// category or unit is rejected as a whole
func CreateProduct(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		payload, err := decodeItems[models.CreateProductRequest](a, c.Body())
		if err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error creating product", err)
		}

		items := payload.Items()
		products := make([]models.Product, len(items))
		for i, item := range items {
			products[i] = models.Product{
				Name:       item.Name,
				Quantity:   item.Quantity,
				Price:      item.Price,
				SalePrice:  item.SalePrice,
				CategoryID: item.CategoryID,
				UnitID:     item.UnitID,
			}
		}

		stored, err := a.Repo.CreateProducts(c.UserContext(), products)
		if err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error creating product", err)
		}

		return nil, created(c, "Product created successfully", resultOf(payload, stored))
	}
}

func ListProducts(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		products, err := a.Repo.ListProducts(c.UserContext())
		if err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error fetching products", err)
		}
		return nil, success(c, products)
	}
}

func GetProduct(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		id, err := parseID(c)
		if err != nil {
			return nil, badRequest(c, "Invalid product id")
		}

		product, err := a.Repo.GetProduct(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, notFound(c, "Product not found")
			}
			return nil, serverErrorWithDetails(c, a.Logger, "Error fetching product", err)
		}

		return nil, success(c, product)
	}
}

// UpdateProduct changes only the fields present in the body
func UpdateProduct(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		id, err := parseID(c)
		if err != nil {
			return nil, badRequest(c, "Invalid product id")
		}

		var req models.UpdateProductRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, serverErrorWithDetails(c, a.Logger, "Error updating product", err)
		}

		product, err := a.Repo.UpdateProduct(c.UserContext(), id, req.Fields())
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, notFound(c, "Product not found")
			}
			return nil, serverErrorWithDetails(c, a.Logger, "Error updating product", err)
		}

		return nil, success(c, product)
	}
}

func DeleteProduct(a *app.App) router.Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		id, err := parseID(c)
		if err != nil {
			return nil, badRequest(c, "Invalid product id")
		}

		if err := a.Repo.DeleteProduct(c.UserContext(), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, notFound(c, "Product not found")
			}
			return nil, serverErrorWithDetails(c, a.Logger, "Error deleting product", err)
		}

		return nil, success(c, fiber.Map{"message": "Product deleted successfully"})
	}
}
