// Package gormstore implements the domain repositories on top of GORM.
package gormstore

import (
	"fmt"
	"strings"

	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&model.Customer{}, &model.Product{}, &model.Order{}, &model.OrderItem{})
}

func (s *Store) Customers() model.CustomerRepository {
	return &customerRepository{db: s.db}
}

func (s *Store) Products() model.ProductRepository {
	return &productRepository{db: s.db}
}

func (s *Store) Orders() model.OrderRepository {
	return &orderRepository{db: s.db}
}

// contains builds a case-insensitive LIKE pattern for substring matching.
func contains(value string) string {
	return "%" + strings.ToLower(value) + "%"
}

func prefix(value string) string {
	return value + "%"
}

// applyOrdering translates "field" / "-field" keys into ORDER BY clauses,
// allowing only the whitelisted sortable fields of the entity.
func applyOrdering(query *gorm.DB, keys []string, sortable map[string]string) (*gorm.DB, error) {
	for _, key := range keys {
		desc := strings.HasPrefix(key, "-")
		name := strings.TrimPrefix(key, "-")
		column, ok := sortable[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", model.ErrInvalidOrderField, name)
		}
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
	}
	return query, nil
}
