package tests

import (
	"testing"

	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/model"
	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type orderFixture struct {
	customers  *mockCustomerRepository
	products   *mockProductRepository
	orders     *mockOrderRepository
	dispatcher *mockEventDispatcher
	svc        service.Orders
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		customers:  newMockCustomerRepository(),
		products:   newMockProductRepository(),
		orders:     newMockOrderRepository(),
		dispatcher: &mockEventDispatcher{},
	}
	f.svc = service.NewOrderService(f.customers, f.products, f.orders, f.dispatcher, zap.NewNop())
	return f
}

func (f *orderFixture) seedCustomer(t *testing.T, name, email string) *model.Customer {
	t.Helper()
	customer := &model.Customer{Name: name, Email: email}
	require.NoError(t, f.customers.Store(customer))
	return customer
}

func (f *orderFixture) seedProduct(t *testing.T, name, price string, stock int) *model.Product {
	t.Helper()
	product := &model.Product{Name: name, Price: decimal.RequireFromString(price), Stock: stock}
	require.NoError(t, f.products.Store(product))
	return product
}

func TestOrderService(t *testing.T) {
	t.Run("CreateOrder", func(t *testing.T) {
		f := newOrderFixture()
		alice := f.seedCustomer(t, "Alice", "alice@example.com")
		keyboard := f.seedProduct(t, "Keyboard", "29.99", 5)
		monitor := f.seedProduct(t, "Monitor", "89.99", 5)

		order, err := f.svc.CreateOrder(model.OrderInput{
			CustomerID: alice.ID,
			Lines: []model.OrderLine{
				{ProductID: keyboard.ID, Quantity: 1},
				{ProductID: monitor.ID, Quantity: 1},
			},
		})
		require.NoError(t, err)
		require.NotZero(t, order.ID)
		require.Equal(t, alice.ID, order.CustomerID)
		require.False(t, order.OrderDate.IsZero())
		require.True(t, order.TotalAmount.Equal(decimal.RequireFromString("119.98")), "got %s", order.TotalAmount)

		require.Len(t, order.Items, 2)
		require.True(t, order.Items[0].UnitPrice.Equal(keyboard.Price))
		require.Equal(t, 1, order.Items[0].Quantity)

		stored, err := f.orders.Find(order.ID)
		require.NoError(t, err)
		require.True(t, stored.TotalAmount.Equal(order.TotalAmount))

		require.Len(t, f.dispatcher.events, 1)
		event, ok := f.dispatcher.events[0].(model.OrderCreated)
		require.True(t, ok)
		require.Equal(t, order.ID, event.OrderID)
		require.Equal(t, alice.ID, event.CustomerID)
		require.True(t, event.TotalAmount.Equal(order.TotalAmount))
	})

	t.Run("CreateOrder_QuantityAwareTotal", func(t *testing.T) {
		f := newOrderFixture()
		alice := f.seedCustomer(t, "Alice", "alice@example.com")
		cable := f.seedProduct(t, "Cable", "10.00", 50)

		order, err := f.svc.CreateOrder(model.OrderInput{
			CustomerID: alice.ID,
			Lines:      []model.OrderLine{{ProductID: cable.ID, Quantity: 3}},
		})
		require.NoError(t, err)
		require.True(t, order.TotalAmount.Equal(decimal.RequireFromString("30.00")), "got %s", order.TotalAmount)
		require.Equal(t, 3, order.Items[0].Quantity)
	})

	t.Run("CreateOrder_ZeroQuantityDefaultsToOne", func(t *testing.T) {
		f := newOrderFixture()
		alice := f.seedCustomer(t, "Alice", "alice@example.com")
		cable := f.seedProduct(t, "Cable", "10.00", 50)

		order, err := f.svc.CreateOrder(model.OrderInput{
			CustomerID: alice.ID,
			Lines:      []model.OrderLine{{ProductID: cable.ID}},
		})
		require.NoError(t, err)
		require.Equal(t, 1, order.Items[0].Quantity)
		require.True(t, order.TotalAmount.Equal(decimal.RequireFromString("10.00")))
	})

	t.Run("CreateOrder_DropsUnknownProducts", func(t *testing.T) {
		f := newOrderFixture()
		alice := f.seedCustomer(t, "Alice", "alice@example.com")
		keyboard := f.seedProduct(t, "Keyboard", "29.99", 5)

		order, err := f.svc.CreateOrder(model.OrderInput{
			CustomerID: alice.ID,
			Lines: []model.OrderLine{
				{ProductID: keyboard.ID, Quantity: 1},
				{ProductID: 9999, Quantity: 1},
			},
		})
		require.NoError(t, err)
		require.Len(t, order.Items, 1)
		require.True(t, order.TotalAmount.Equal(keyboard.Price))
	})

	t.Run("CreateOrder_NoProductsResolve", func(t *testing.T) {
		f := newOrderFixture()
		alice := f.seedCustomer(t, "Alice", "alice@example.com")

		_, err := f.svc.CreateOrder(model.OrderInput{
			CustomerID: alice.ID,
			Lines:      []model.OrderLine{{ProductID: 9999}},
		})
		require.ErrorIs(t, err, model.ErrNoProductsFound)
	})

	t.Run("CreateOrder_NoLines", func(t *testing.T) {
		f := newOrderFixture()
		alice := f.seedCustomer(t, "Alice", "alice@example.com")

		_, err := f.svc.CreateOrder(model.OrderInput{CustomerID: alice.ID})
		require.ErrorIs(t, err, model.ErrOrderProductsRequired)
	})

	t.Run("CreateOrder_CustomerNotFound", func(t *testing.T) {
		f := newOrderFixture()
		keyboard := f.seedProduct(t, "Keyboard", "29.99", 5)

		_, err := f.svc.CreateOrder(model.OrderInput{
			CustomerID: 404,
			Lines:      []model.OrderLine{{ProductID: keyboard.ID}},
		})
		require.ErrorIs(t, err, model.ErrCustomerNotFound)
	})

	t.Run("GenerateReport", func(t *testing.T) {
		f := newOrderFixture()
		alice := f.seedCustomer(t, "Alice", "alice@example.com")
		f.seedCustomer(t, "Bob", "bob@example.com")

		require.NoError(t, f.orders.Store(&model.Order{CustomerID: alice.ID, TotalAmount: decimal.RequireFromString("10.00")}))
		require.NoError(t, f.orders.Store(&model.Order{CustomerID: alice.ID, TotalAmount: decimal.RequireFromString("5.50")}))

		report, err := f.svc.GenerateReport()
		require.NoError(t, err)
		require.EqualValues(t, 2, report.Customers)
		require.EqualValues(t, 2, report.Orders)
		require.True(t, report.TotalRevenue.Equal(decimal.RequireFromString("15.50")), "got %s", report.TotalRevenue)
	})
}
