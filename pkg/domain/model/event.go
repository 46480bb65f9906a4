package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func NewEventID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

type CustomerCreated struct {
	EventID    uuid.UUID
	CustomerID int64
	Email      string
}

func (e CustomerCreated) Type() string {
	return "CustomerCreated"
}

type CustomerDeleted struct {
	EventID    uuid.UUID
	CustomerID int64
}

func (e CustomerDeleted) Type() string {
	return "CustomerDeleted"
}

type ProductCreated struct {
	EventID   uuid.UUID
	ProductID int64
	Name      string
	Price     decimal.Decimal
}

func (e ProductCreated) Type() string {
	return "ProductCreated"
}

type OrderCreated struct {
	EventID     uuid.UUID
	OrderID     int64
	CustomerID  int64
	TotalAmount decimal.Decimal
}

func (e OrderCreated) Type() string {
	return "OrderCreated"
}

type LowStockReplenished struct {
	EventID    uuid.UUID
	ProductIDs []int64
	Increment  int
}

func (e LowStockReplenished) Type() string {
	return "LowStockReplenished"
}
