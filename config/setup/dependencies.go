package setup

import (
	"log/slog"
	"shop-api/app"
	"shop-api/config"
	"shop-api/database"
)

// InitDatabase opens the store and runs migrations
func InitDatabase(cfg *config.Config, logger *slog.Logger) (*database.DB, error) {
	db, err := database.Open(cfg.DatabaseURL, database.Options{LogQueries: cfg.IsDevelopment()})
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "dialect", db.Dialector.Name())
	return db, nil
}

// InitApp builds the dependency container handed to the controllers
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	application := app.New(repo, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown releases what InitDatabase acquired
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
