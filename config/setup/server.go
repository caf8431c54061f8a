package setup

import (
	"log/slog"
	"shop-api/config"
	"shop-api/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewFiberApp creates and configures a new Fiber application
func NewFiberApp(cfg *config.Config, logger *slog.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		DisableStartupMessage: !cfg.IsDevelopment(),
		ErrorHandler:          middleware.ErrorHandler(logger, cfg.IsDevelopment()),
		ReadBufferSize:        8192,
	})
}
