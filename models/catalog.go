package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID        uint      `gorm:"column:category_id;primaryKey" json:"category_id"`
	Name      string    `gorm:"column:category_name;not null" json:"category_name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Products  []Product `gorm:"foreignKey:CategoryID" json:"product,omitempty"`
}

type Unit struct {
	ID        uint      `gorm:"column:unit_id;primaryKey" json:"unit_id"`
	Name      string    `gorm:"column:unit_name;not null" json:"unit_name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Products  []Product `gorm:"foreignKey:UnitID" json:"product,omitempty"`
}

type Product struct {
	ID         uint            `gorm:"column:product_id;primaryKey" json:"product_id"`
	Name       string          `gorm:"column:product_name;not null" json:"product_name"`
	Quantity   float64         `gorm:"not null" json:"quantity"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	SalePrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"sale_price"`
	CategoryID uint            `gorm:"index;not null" json:"category_id"`
	UnitID     uint            `gorm:"index;not null" json:"unit_id"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	Category   *Category       `json:"category,omitempty"`
	Unit       *Unit           `json:"unit,omitempty"`
}

type CreateCategoryRequest struct {
	Name string `json:"category_name" validate:"required,max=100,entityname"`
}

type UpdateCategoryRequest struct {
	Name string `json:"category_name" validate:"required,max=100,entityname"`
}

type CreateUnitRequest struct {
	Name string `json:"unit_name" validate:"required,max=50,entityname"`
}

type UpdateUnitRequest struct {
	Name string `json:"unit_name" validate:"required,max=50,entityname"`
}

type CreateProductRequest struct {
	Name       string          `json:"product_name" validate:"required,max=200"`
	Quantity   float64         `json:"quantity" validate:"gte=0"`
	Price      decimal.Decimal `json:"price"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	CategoryID uint            `json:"category_id" validate:"gt=0"`
	UnitID     uint            `json:"unit_id" validate:"gt=0"`
}

// UpdateProductRequest holds optional fields; nil means unchanged
type UpdateProductRequest struct {
	Name       *string          `json:"product_name"`
	Quantity   *float64         `json:"quantity"`
	Price      *decimal.Decimal `json:"price"`
	SalePrice  *decimal.Decimal `json:"sale_price"`
	CategoryID *uint            `json:"category_id"`
	UnitID     *uint            `json:"unit_id"`
}

// Fields returns the columns to update
func (r UpdateProductRequest) Fields() map[string]any {
	fields := make(map[string]any)
	if r.Name != nil {
		fields["product_name"] = *r.Name
	}
	if r.Quantity != nil {
		fields["quantity"] = *r.Quantity
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.SalePrice != nil {
		fields["sale_price"] = *r.SalePrice
	}
	if r.CategoryID != nil {
		fields["category_id"] = *r.CategoryID
	}
	if r.UnitID != nil {
		fields["unit_id"] = *r.UnitID
	}
	return fields
}
