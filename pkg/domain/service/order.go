package service

import (
	"fmt"
	"time"

	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Orders creates and queries customer orders.
type Orders interface {
	CreateOrder(input model.OrderInput) (*model.Order, error)
	GetOrder(id int64) (*model.Order, error)
	ListOrders(filter model.OrderFilter) ([]*model.Order, error)
	GenerateReport() (*model.Report, error)
}

func NewOrderService(customers model.CustomerRepository, products model.ProductRepository, orders model.OrderRepository, dispatcher EventDispatcher, logger *zap.Logger) Orders {
	return &orderService{
		customers:  customers,
		products:   products,
		orders:     orders,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

type orderService struct {
	customers  model.CustomerRepository
	products   model.ProductRepository
	orders     model.OrderRepository
	dispatcher EventDispatcher
	logger     *zap.Logger
}

// CreateOrder resolves the customer and the requested products, captures
// each product's current price and computes the order total. Product ids
// that do not resolve are dropped; the order fails only when none of them
// resolve.
func (s *orderService) CreateOrder(input model.OrderInput) (*model.Order, error) {
	if len(input.Lines) == 0 {
		return nil, model.ErrOrderProductsRequired
	}

	customer, err := s.customers.Find(input.CustomerID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(input.Lines))
	for _, line := range input.Lines {
		ids = append(ids, line.ProductID)
	}
	products, err := s.products.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}
	if len(products) == 0 {
		return nil, model.ErrNoProductsFound
	}

	byID := make(map[int64]*model.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(input.Lines))
	for _, line := range input.Lines {
		product, ok := byID[line.ProductID]
		if !ok {
			s.logger.Debug("skipping unknown product in order", zap.Int64("product_id", line.ProductID))
			continue
		}
		quantity := line.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Product:   product,
			Quantity:  quantity,
			UnitPrice: product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(quantity))))
	}

	order := &model.Order{
		CustomerID:  customer.ID,
		Customer:    customer,
		Items:       items,
		TotalAmount: total,
		OrderDate:   time.Now(),
	}
	if err := s.orders.Store(order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	event := model.OrderCreated{EventID: model.NewEventID(), OrderID: order.ID, CustomerID: customer.ID, TotalAmount: order.TotalAmount}
	if err := s.dispatcher.Dispatch(event); err != nil {
		s.logger.Warn("failed to dispatch OrderCreated event", zap.Error(err))
	}

	return order, nil
}

func (s *orderService) GetOrder(id int64) (*model.Order, error) {
	return s.orders.Find(id)
}

func (s *orderService) ListOrders(filter model.OrderFilter) ([]*model.Order, error) {
	return s.orders.List(filter)
}

func (s *orderService) GenerateReport() (*model.Report, error) {
	customers, err := s.customers.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}
	orders, err := s.orders.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	revenue, err := s.orders.TotalRevenue()
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return &model.Report{Customers: customers, Orders: orders, TotalRevenue: revenue}, nil
}
