package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/model"

	"go.uber.org/zap"
)

// Catalog manages the customer and product records of the CRM.
type Catalog interface {
	CreateCustomer(input model.CustomerInput) (*model.Customer, error)
	GetCustomer(id int64) (*model.Customer, error)
	ListCustomers(filter model.CustomerFilter) ([]*model.Customer, error)
	DeleteCustomer(id int64) error
	BulkCreateCustomers(inputs []model.CustomerInput) ([]*model.Customer, []string)

	CreateProduct(input model.ProductInput) (*model.Product, error)
	GetProduct(id int64) (*model.Product, error)
	ListProducts(filter model.ProductFilter) ([]*model.Product, error)
}

func NewCatalogService(customers model.CustomerRepository, products model.ProductRepository, dispatcher EventDispatcher, logger *zap.Logger) Catalog {
	return &catalogService{
		customers:  customers,
		products:   products,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

type catalogService struct {
	customers  model.CustomerRepository
	products   model.ProductRepository
	dispatcher EventDispatcher
	logger     *zap.Logger
}

func (s *catalogService) CreateCustomer(input model.CustomerInput) (*model.Customer, error) {
	if input.Name == "" {
		return nil, model.ErrCustomerNameRequired
	}
	if input.Email == "" {
		return nil, model.ErrCustomerEmailRequired
	}
	if input.Phone != "" && !model.ValidPhone(input.Phone) {
		return nil, model.ErrCustomerPhoneInvalid
	}

	if _, err := s.customers.FindByName(input.Name); !errors.Is(err, model.ErrCustomerNotFound) {
		if err == nil {
			return nil, model.ErrCustomerNameExists
		}
		return nil, fmt.Errorf("failed to check customer name existence: %w", err)
	}
	if _, err := s.customers.FindByEmail(input.Email); !errors.Is(err, model.ErrCustomerNotFound) {
		if err == nil {
			return nil, model.ErrCustomerEmailExists
		}
		return nil, fmt.Errorf("failed to check customer email existence: %w", err)
	}

	now := time.Now()
	customer := &model.Customer{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.customers.Store(customer); err != nil {
		return nil, fmt.Errorf("failed to store customer: %w", err)
	}

	event := model.CustomerCreated{EventID: model.NewEventID(), CustomerID: customer.ID, Email: customer.Email}
	if err := s.dispatcher.Dispatch(event); err != nil {
		s.logger.Warn("failed to dispatch CustomerCreated event", zap.Error(err))
	}

	return customer, nil
}

func (s *catalogService) GetCustomer(id int64) (*model.Customer, error) {
	return s.customers.Find(id)
}

func (s *catalogService) ListCustomers(filter model.CustomerFilter) ([]*model.Customer, error) {
	return s.customers.List(filter)
}

func (s *catalogService) DeleteCustomer(id int64) error {
	if err := s.customers.Delete(id); err != nil {
		if errors.Is(err, model.ErrCustomerNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	event := model.CustomerDeleted{EventID: model.NewEventID(), CustomerID: id}
	if err := s.dispatcher.Dispatch(event); err != nil {
		s.logger.Warn("failed to dispatch CustomerDeleted event", zap.Error(err))
	}
	return nil
}

// BulkCreateCustomers applies CreateCustomer to each input independently.
// A failing input is collected as an error message and does not abort the
// remaining inputs.
func (s *catalogService) BulkCreateCustomers(inputs []model.CustomerInput) ([]*model.Customer, []string) {
	if len(inputs) == 0 {
		return nil, []string{"no customer data provided for bulk creation"}
	}

	var created []*model.Customer
	var failures []string
	for _, input := range inputs {
		customer, err := s.CreateCustomer(input)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s (%s): %s", input.Name, input.Email, err))
			continue
		}
		created = append(created, customer)
	}
	return created, failures
}

func (s *catalogService) CreateProduct(input model.ProductInput) (*model.Product, error) {
	if input.Name == "" {
		return nil, model.ErrProductNameRequired
	}
	// Round half-up to two decimal places before any comparison so the
	// stored price is exactly what the checks saw.
	price := input.Price.Round(2)
	if price.IsNegative() {
		return nil, model.ErrProductPriceNegative
	}
	if input.Stock < 0 {
		return nil, model.ErrProductStockNegative
	}

	if _, err := s.products.FindByName(input.Name); !errors.Is(err, model.ErrProductNotFound) {
		if err == nil {
			return nil, model.ErrProductNameExists
		}
		return nil, fmt.Errorf("failed to check product name existence: %w", err)
	}

	now := time.Now()
	product := &model.Product{
		Name:      input.Name,
		Price:     price,
		Stock:     input.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.products.Store(product); err != nil {
		return nil, fmt.Errorf("failed to store product: %w", err)
	}

	event := model.ProductCreated{EventID: model.NewEventID(), ProductID: product.ID, Name: product.Name, Price: product.Price}
	if err := s.dispatcher.Dispatch(event); err != nil {
		s.logger.Warn("failed to dispatch ProductCreated event", zap.Error(err))
	}

	return product, nil
}

func (s *catalogService) GetProduct(id int64) (*model.Product, error) {
	return s.products.Find(id)
}

func (s *catalogService) ListProducts(filter model.ProductFilter) ([]*model.Product, error) {
	return s.products.List(filter)
}
