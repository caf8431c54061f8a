package database

import (
	"context"
	"shop-api/models"
)

// ==================== UNIT OPERATIONS ====================

func (r *Repository) CreateUnits(ctx context.Context, units []models.Unit) ([]models.Unit, error) {
	return createAll(ctx, r.db.DB, units)
}

// ListUnits returns units newest first together with their products
func (r *Repository) ListUnits(ctx context.Context) ([]models.Unit, error) {
	return listRecent[models.Unit](ctx, r.db.DB, "Products")
}

func (r *Repository) GetUnit(ctx context.Context, id uint) (*models.Unit, error) {
	return findByID[models.Unit](ctx, r.db.DB, id, "Products")
}

func (r *Repository) UpdateUnit(ctx context.Context, id uint, name string) (*models.Unit, error) {
	return updateByID[models.Unit](ctx, r.db.DB, id, map[string]any{"unit_name": name})
}

func (r *Repository) DeleteUnit(ctx context.Context, id uint) error {
	return deleteByID[models.Unit](ctx, r.db.DB, id)
}
