package setup

import (
	"log/slog"
	"shop-api/config"
	"shop-api/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// ApplyMiddleware applies all global middleware to the Fiber app
func ApplyMiddleware(app *fiber.App, cfg *config.Config, metrics *middleware.Metrics, logger *slog.Logger) {
	// Recover sits inside the logger and metrics so panics are logged and counted
	app.Use(
		middleware.StructuredLogger(logger),
		metrics.Handler(),
		middleware.Recover(),
		middleware.Security(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept,X-Request-ID",
			ExposeHeaders:    "X-Request-ID",
			AllowCredentials: false,
			MaxAge:           86400,
		}),
	)
}
