package tests

import (
	"errors"
	"sort"
	"strings"

	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/model"
	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/service"

	"github.com/shopspring/decimal"
)

var errStoreUnavailable = errors.New("store unavailable")

var _ model.CustomerRepository = &mockCustomerRepository{}

type mockCustomerRepository struct {
	store  map[int64]*model.Customer
	nextID int64

	// orders, when set, receives the cascade on Delete the way the real
	// store does.
	orders *mockOrderRepository
}

func newMockCustomerRepository() *mockCustomerRepository {
	return &mockCustomerRepository{store: make(map[int64]*model.Customer)}
}

func (m *mockCustomerRepository) Store(customer *model.Customer) error {
	if customer.ID == 0 {
		m.nextID++
		customer.ID = m.nextID
	}
	m.store[customer.ID] = customer
	return nil
}

func (m *mockCustomerRepository) Find(id int64) (*model.Customer, error) {
	if customer, ok := m.store[id]; ok {
		return customer, nil
	}
	return nil, model.ErrCustomerNotFound
}

func (m *mockCustomerRepository) FindByEmail(email string) (*model.Customer, error) {
	for _, customer := range m.store {
		if strings.EqualFold(customer.Email, email) {
			return customer, nil
		}
	}
	return nil, model.ErrCustomerNotFound
}

func (m *mockCustomerRepository) FindByName(name string) (*model.Customer, error) {
	for _, customer := range m.store {
		if customer.Name == name {
			return customer, nil
		}
	}
	return nil, model.ErrCustomerNotFound
}

func (m *mockCustomerRepository) Delete(id int64) error {
	if _, ok := m.store[id]; !ok {
		return model.ErrCustomerNotFound
	}
	delete(m.store, id)
	if m.orders != nil {
		m.orders.deleteByCustomer(id)
	}
	return nil
}

func (m *mockCustomerRepository) List(model.CustomerFilter) ([]*model.Customer, error) {
	customers := make([]*model.Customer, 0, len(m.store))
	for _, customer := range m.store {
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers, nil
}

func (m *mockCustomerRepository) Count() (int64, error) {
	return int64(len(m.store)), nil
}

var _ model.ProductRepository = &mockProductRepository{}

type mockProductRepository struct {
	store  map[int64]*model.Product
	nextID int64

	failStoreAfter int // when > 0, Store fails after that many calls
	storeCalls     int
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{store: make(map[int64]*model.Product)}
}

func (m *mockProductRepository) Store(product *model.Product) error {
	m.storeCalls++
	if m.failStoreAfter > 0 && m.storeCalls > m.failStoreAfter {
		return errStoreUnavailable
	}
	if product.ID == 0 {
		m.nextID++
		product.ID = m.nextID
	}
	m.store[product.ID] = product
	return nil
}

func (m *mockProductRepository) Find(id int64) (*model.Product, error) {
	if product, ok := m.store[id]; ok {
		return product, nil
	}
	return nil, model.ErrProductNotFound
}

func (m *mockProductRepository) FindByName(name string) (*model.Product, error) {
	for _, product := range m.store {
		if product.Name == name {
			return product, nil
		}
	}
	return nil, model.ErrProductNotFound
}

func (m *mockProductRepository) FindByIDs(ids []int64) ([]*model.Product, error) {
	var products []*model.Product
	for _, id := range ids {
		if product, ok := m.store[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (m *mockProductRepository) FindBelowStock(threshold int) ([]*model.Product, error) {
	var products []*model.Product
	for _, product := range m.store {
		if product.Stock < threshold {
			products = append(products, product)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (m *mockProductRepository) List(model.ProductFilter) ([]*model.Product, error) {
	products := make([]*model.Product, 0, len(m.store))
	for _, product := range m.store {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

var _ model.OrderRepository = &mockOrderRepository{}

type mockOrderRepository struct {
	store  map[int64]*model.Order
	nextID int64
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{store: make(map[int64]*model.Order)}
}

func (m *mockOrderRepository) Store(order *model.Order) error {
	if order.ID == 0 {
		m.nextID++
		order.ID = m.nextID
	}
	m.store[order.ID] = order
	return nil
}

func (m *mockOrderRepository) Find(id int64) (*model.Order, error) {
	if order, ok := m.store[id]; ok {
		return order, nil
	}
	return nil, model.ErrOrderNotFound
}

func (m *mockOrderRepository) List(model.OrderFilter) ([]*model.Order, error) {
	orders := make([]*model.Order, 0, len(m.store))
	for _, order := range m.store {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (m *mockOrderRepository) Count() (int64, error) {
	return int64(len(m.store)), nil
}

func (m *mockOrderRepository) TotalRevenue() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, order := range m.store {
		total = total.Add(order.TotalAmount)
	}
	return total, nil
}

func (m *mockOrderRepository) deleteByCustomer(customerID int64) {
	for id, order := range m.store {
		if order.CustomerID == customerID {
			delete(m.store, id)
		}
	}
}

var _ service.EventDispatcher = &mockEventDispatcher{}

type mockEventDispatcher struct {
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.events = append(m.events, event)
	return nil
}
