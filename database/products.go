package database

import (
	"context"
	"shop-api/models"
)

// ==================== PRODUCT OPERATIONS ====================

func (r *Repository) CreateProducts(ctx context.Context, products []models.Product) ([]models.Product, error) {
	return createAll(ctx, r.db.DB, products)
}

// ListProducts returns products newest first with their category and unit
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	return listRecent[models.Product](ctx, r.db.DB, "Category", "Unit")
}

func (r *Repository) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return findByID[models.Product](ctx, r.db.DB, id, "Category", "Unit")
}

func (r *Repository) UpdateProduct(ctx context.Context, id uint, fields map[string]any) (*models.Product, error) {
	return updateByID[models.Product](ctx, r.db.DB, id, fields, "Category", "Unit")
}

func (r *Repository) DeleteProduct(ctx context.Context, id uint) error {
	return deleteByID[models.Product](ctx, r.db.DB, id)
}
