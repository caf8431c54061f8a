package database

import (
	"context"
	"shop-api/models"
)

// ==================== CATEGORY OPERATIONS ====================

// CreateCategories inserts one or more categories atomically
func (r *Repository) CreateCategories(ctx context.Context, categories []models.Category) ([]models.Category, error) {
	return createAll(ctx, r.db.DB, categories)
}

// ListCategories returns categories newest first, with their products if asked
func (r *Repository) ListCategories(ctx context.Context, withProducts bool) ([]models.Category, error) {
	if withProducts {
		return listRecent[models.Category](ctx, r.db.DB, "Products")
	}
	return listRecent[models.Category](ctx, r.db.DB)
}

// GetCategory returns ErrNotFound if the category does not exist
func (r *Repository) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	return findByID[models.Category](ctx, r.db.DB, id)
}

func (r *Repository) UpdateCategory(ctx context.Context, id uint, name string) (*models.Category, error) {
	return updateByID[models.Category](ctx, r.db.DB, id, map[string]any{"category_name": name})
}

func (r *Repository) DeleteCategory(ctx context.Context, id uint) error {
	return deleteByID[models.Category](ctx, r.db.DB, id)
}
