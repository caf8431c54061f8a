package app

import (
	"context"
	"shop-api/models"
)

// CategoryRepository defines the data access used by the category controller
type CategoryRepository interface {
	CreateCategories(ctx context.Context, categories []models.Category) ([]models.Category, error)
	ListCategories(ctx context.Context, withProducts bool) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uint, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

// UnitRepository defines the data access used by the unit controller
type UnitRepository interface {
	CreateUnits(ctx context.Context, units []models.Unit) ([]models.Unit, error)
	ListUnits(ctx context.Context) ([]models.Unit, error)
	GetUnit(ctx context.Context, id uint) (*models.Unit, error)
	UpdateUnit(ctx context.Context, id uint, name string) (*models.Unit, error)
	DeleteUnit(ctx context.Context, id uint) error
}

// ProductRepository defines the data access used by the product controller
type ProductRepository interface {
	CreateProducts(ctx context.Context, products []models.Product) ([]models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, fields map[string]any) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

// UserRepository defines the data access used by the user controller
type UserRepository interface {
	CreateUsers(ctx context.Context, users []models.User) ([]models.User, error)
	ListUsers(ctx context.Context, email string) ([]models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, fields map[string]any) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

// Repository is everything the controllers need from the store.
// Production uses *database.Repository; tests may substitute a mock.
type Repository interface {
	CategoryRepository
	UnitRepository
	ProductRepository
	UserRepository
}
