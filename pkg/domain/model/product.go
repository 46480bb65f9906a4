package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock count below which a product is
// considered low stock.
const LowStockThreshold = 10

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductNameRequired  = errors.New("product name is required")
	ErrProductNameExists    = errors.New("product with this name already exists")
	ErrProductPriceNegative = errors.New("product price cannot be negative")
	ErrProductStockNegative = errors.New("product stock cannot be negative")
)

type Product struct {
	ID        int64           `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Stock     int             `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductInput carries the caller-supplied fields for creating a product.
// A zero price is valid; the price is rounded to two decimal places on
// creation.
type ProductInput struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

// ProductFilter narrows and orders a product listing.
type ProductFilter struct {
	NameContains string
	PriceGte     *decimal.Decimal
	PriceLte     *decimal.Decimal
	StockGte     *int
	StockLte     *int

	// LowStockOnly keeps only products with stock below the fixed
	// low-stock threshold.
	LowStockOnly bool

	OrderBy []string
}

type ProductRepository interface {
	Store(product *Product) error
	Find(id int64) (*Product, error)
	FindByName(name string) (*Product, error)
	// FindByIDs resolves the subset of ids that exist; unknown ids are
	// simply absent from the result.
	FindByIDs(ids []int64) ([]*Product, error)
	FindBelowStock(threshold int) ([]*Product, error)
	List(filter ProductFilter) ([]*Product, error)
}
