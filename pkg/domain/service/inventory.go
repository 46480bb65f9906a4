package service

import (
	"fmt"
	"time"

	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/model"

	"go.uber.org/zap"
)

const (
	DefaultLowStockThreshold = model.LowStockThreshold
	DefaultRestockIncrement  = 10
)

// Inventory performs periodic stock maintenance.
type Inventory interface {
	ReplenishLowStock(threshold, increment int) ([]*model.Product, string, error)
}

func NewInventoryService(products model.ProductRepository, dispatcher EventDispatcher, logger *zap.Logger) Inventory {
	return &inventoryService{
		products:   products,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

type inventoryService struct {
	products   model.ProductRepository
	dispatcher EventDispatcher
	logger     *zap.Logger
}

// ReplenishLowStock raises the stock of every product strictly below
// threshold by increment. Non-positive arguments fall back to the
// defaults. Each product is saved independently; a failure part-way
// through leaves the earlier updates in place and reports them.
func (s *inventoryService) ReplenishLowStock(threshold, increment int) ([]*model.Product, string, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	if increment <= 0 {
		increment = DefaultRestockIncrement
	}

	low, err := s.products.FindBelowStock(threshold)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find low-stock products: %w", err)
	}
	if len(low) == 0 {
		return nil, "no products below the stock threshold", nil
	}

	updated := make([]*model.Product, 0, len(low))
	ids := make([]int64, 0, len(low))
	for _, product := range low {
		product.Stock += increment
		product.UpdatedAt = time.Now()
		if err := s.products.Store(product); err != nil {
			message := fmt.Sprintf("restocked %d of %d low-stock products", len(updated), len(low))
			return updated, message, fmt.Errorf("failed to restock product %d: %w", product.ID, err)
		}
		updated = append(updated, product)
		ids = append(ids, product.ID)
	}

	event := model.LowStockReplenished{EventID: model.NewEventID(), ProductIDs: ids, Increment: increment}
	if err := s.dispatcher.Dispatch(event); err != nil {
		s.logger.Warn("failed to dispatch LowStockReplenished event", zap.Error(err))
	}

	return updated, fmt.Sprintf("restocked %d low-stock products", len(updated)), nil
}
