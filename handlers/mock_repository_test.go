package handlers_test

import (
	"context"
	"shop-api/models"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateCategories(ctx context.Context, categories []models.Category) ([]models.Category, error) {
	args := m.Called(ctx, categories)
	out, _ := args.Get(0).([]models.Category)
	return out, args.Error(1)
}

func (m *mockRepository) ListCategories(ctx context.Context, withProducts bool) ([]models.Category, error) {
	args := m.Called(ctx, withProducts)
	out, _ := args.Get(0).([]models.Category)
	return out, args.Error(1)
}

func (m *mockRepository) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.Category)
	return out, args.Error(1)
}

func (m *mockRepository) UpdateCategory(ctx context.Context, id uint, name string) (*models.Category, error) {
	args := m.Called(ctx, id, name)
	out, _ := args.Get(0).(*models.Category)
	return out, args.Error(1)
}

func (m *mockRepository) DeleteCategory(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) CreateUnits(ctx context.Context, units []models.Unit) ([]models.Unit, error) {
	args := m.Called(ctx, units)
	out, _ := args.Get(0).([]models.Unit)
	return out, args.Error(1)
}

func (m *mockRepository) ListUnits(ctx context.Context) ([]models.Unit, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Unit)
	return out, args.Error(1)
}

func (m *mockRepository) GetUnit(ctx context.Context, id uint) (*models.Unit, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.Unit)
	return out, args.Error(1)
}

func (m *mockRepository) UpdateUnit(ctx context.Context, id uint, name string) (*models.Unit, error) {
	args := m.Called(ctx, id, name)
	out, _ := args.Get(0).(*models.Unit)
	return out, args.Error(1)
}

func (m *mockRepository) DeleteUnit(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) CreateProducts(ctx context.Context, products []models.Product) ([]models.Product, error) {
	args := m.Called(ctx, products)
	out, _ := args.Get(0).([]models.Product)
	return out, args.Error(1)
}

func (m *mockRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Product)
	return out, args.Error(1)
}

func (m *mockRepository) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.Product)
	return out, args.Error(1)
}

func (m *mockRepository) UpdateProduct(ctx context.Context, id uint, fields map[string]any) (*models.Product, error) {
	args := m.Called(ctx, id, fields)
	out, _ := args.Get(0).(*models.Product)
	return out, args.Error(1)
}

func (m *mockRepository) DeleteProduct(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) CreateUsers(ctx context.Context, users []models.User) ([]models.User, error) {
	args := m.Called(ctx, users)
	out, _ := args.Get(0).([]models.User)
	return out, args.Error(1)
}

func (m *mockRepository) ListUsers(ctx context.Context, email string) ([]models.User, error) {
	args := m.Called(ctx, email)
	out, _ := args.Get(0).([]models.User)
	return out, args.Error(1)
}

func (m *mockRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.User)
	return out, args.Error(1)
}

func (m *mockRepository) UpdateUser(ctx context.Context, id uint, fields map[string]any) (*models.User, error) {
	args := m.Called(ctx, id, fields)
	out, _ := args.Get(0).(*models.User)
	return out, args.Error(1)
}

func (m *mockRepository) DeleteUser(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
