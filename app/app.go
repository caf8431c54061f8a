package app

import (
	"log/slog"
	"shop-api/validator"
)

// App holds all application dependencies
// Controllers receive it explicitly instead of reaching for globals
type App struct {
	Repo      Repository
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo Repository, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		Repo:      repo,
		Validator: validator.New(),
		Logger:    logger,
	}
}
