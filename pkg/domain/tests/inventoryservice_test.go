package tests

import (
	"testing"

	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/model"
	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedProduct(t *testing.T, products *mockProductRepository, name string, stock int) *model.Product {
	t.Helper()
	product := &model.Product{Name: name, Price: decimal.New(5, 0), Stock: stock}
	require.NoError(t, products.Store(product))
	return product
}

func TestInventoryService(t *testing.T) {
	t.Run("ReplenishLowStock", func(t *testing.T) {
		products := newMockProductRepository()
		dispatcher := &mockEventDispatcher{}
		svc := service.NewInventoryService(products, dispatcher, zap.NewNop())

		low := seedProduct(t, products, "Cable", 3)
		high := seedProduct(t, products, "Monitor", 25)

		updated, message, err := svc.ReplenishLowStock(0, 0)
		require.NoError(t, err)
		require.Len(t, updated, 1)
		require.Equal(t, low.ID, updated[0].ID)
		require.Equal(t, 13, updated[0].Stock)
		require.Equal(t, 25, high.Stock)
		require.Contains(t, message, "restocked 1")

		require.Len(t, dispatcher.events, 1)
		event, ok := dispatcher.events[0].(model.LowStockReplenished)
		require.True(t, ok)
		require.Equal(t, []int64{low.ID}, event.ProductIDs)
		require.Equal(t, 10, event.Increment)
	})

	t.Run("ReplenishLowStock_SecondRunIsNoOp", func(t *testing.T) {
		products := newMockProductRepository()
		svc := service.NewInventoryService(products, &mockEventDispatcher{}, zap.NewNop())

		low := seedProduct(t, products, "Cable", 3)

		updated, _, err := svc.ReplenishLowStock(0, 0)
		require.NoError(t, err)
		require.Len(t, updated, 1)
		require.Equal(t, 13, low.Stock)

		updated, message, err := svc.ReplenishLowStock(0, 0)
		require.NoError(t, err)
		require.Empty(t, updated)
		require.Equal(t, 13, low.Stock)
		require.Equal(t, "no products below the stock threshold", message)
	})

	t.Run("ReplenishLowStock_ThresholdIsExclusive", func(t *testing.T) {
		products := newMockProductRepository()
		svc := service.NewInventoryService(products, &mockEventDispatcher{}, zap.NewNop())

		atThreshold := seedProduct(t, products, "Keyboard", 10)

		updated, _, err := svc.ReplenishLowStock(0, 0)
		require.NoError(t, err)
		require.Empty(t, updated)
		require.Equal(t, 10, atThreshold.Stock)
	})

	t.Run("ReplenishLowStock_CustomArguments", func(t *testing.T) {
		products := newMockProductRepository()
		svc := service.NewInventoryService(products, &mockEventDispatcher{}, zap.NewNop())

		low := seedProduct(t, products, "Cable", 4)

		updated, _, err := svc.ReplenishLowStock(5, 3)
		require.NoError(t, err)
		require.Len(t, updated, 1)
		require.Equal(t, 7, low.Stock)
	})

	t.Run("ReplenishLowStock_PartialFailureKeepsEarlierUpdates", func(t *testing.T) {
		products := newMockProductRepository()
		svc := service.NewInventoryService(products, &mockEventDispatcher{}, zap.NewNop())

		seedProduct(t, products, "Cable", 1)
		seedProduct(t, products, "Mouse", 2)

		// Allow the two seed stores plus exactly one restock save.
		products.failStoreAfter = 3

		updated, message, err := svc.ReplenishLowStock(0, 0)
		require.Error(t, err)
		require.Len(t, updated, 1)
		require.Equal(t, 11, updated[0].Stock)
		require.Contains(t, message, "restocked 1 of 2")
	})
}
