package setup

import (
	"shop-api/app"
	"shop-api/handlers"
	"shop-api/middleware"
	"shop-api/router"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App, metrics *middleware.Metrics) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	fiberApp.Get("/metrics", metrics.Endpoint())

	api := router.New(fiberApp, application.Logger).Group("/api")

	handlers.CategoryRoutes(api.Group("/categories"), application)
	handlers.UnitRoutes(api.Group("/units"), application)
	handlers.ProductRoutes(api.Group("/products"), application)
	api.Group("/users").Register(handlers.UserRoutes(application)...)
}
