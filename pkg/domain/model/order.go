package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderProductsRequired = errors.New("an order requires at least one product")
	ErrNoProductsFound       = errors.New("none of the requested products exist")
	ErrInvalidOrderField     = errors.New("unknown ordering field")
)

type Order struct {
	ID          int64           `gorm:"primaryKey" json:"id"`
	CustomerID  int64           `gorm:"not null;index" json:"customer_id"`
	Customer    *Customer       `gorm:"constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Items       []OrderItem     `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	OrderDate   time.Time       `json:"order_date"`
}

// OrderItem links an order to a product. UnitPrice is the product price at
// the time the order was created; historical orders keep their original
// totals even if the product price changes later.
type OrderItem struct {
	ID        int64           `gorm:"primaryKey" json:"id"`
	OrderID   int64           `gorm:"not null;index" json:"order_id"`
	ProductID int64           `gorm:"not null;index" json:"product_id"`
	Product   *Product        `json:"product,omitempty"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"unit_price"`
}

type OrderLine struct {
	ProductID int64
	Quantity  int
}

type OrderInput struct {
	CustomerID int64
	Lines      []OrderLine
}

// OrderFilter narrows and orders an order listing. The name predicates
// reach through the owning customer and the associated products.
type OrderFilter struct {
	CustomerNameContains string
	ProductNameContains  string
	ProductID            *int64
	TotalAmountGte       *decimal.Decimal
	TotalAmountLte       *decimal.Decimal
	OrderDateGte         *time.Time
	OrderDateLte         *time.Time
	OrderBy              []string
}

// Report summarizes the CRM for the periodic revenue report.
type Report struct {
	Customers    int64
	Orders       int64
	TotalRevenue decimal.Decimal
}

type OrderRepository interface {
	Store(order *Order) error
	Find(id int64) (*Order, error)
	List(filter OrderFilter) ([]*Order, error)
	Count() (int64, error)
	TotalRevenue() (decimal.Decimal, error)
}
