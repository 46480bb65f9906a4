package gormstore

import (
	"errors"

	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var orderSortFields = map[string]string{
	"order_date":   "order_date",
	"total_amount": "total_amount",
}

type orderRepository struct {
	db *gorm.DB
}

// Store persists the order and its items in one transaction. The customer
// is a reference to an existing row and is never written here: if it was
// deleted between the service's read and this write, the foreign key
// fails the order instead of resurrecting the customer.
func (r *orderRepository) Store(order *model.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Customer").Save(order).Error
	})
}

func (r *orderRepository) Find(id int64) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Customer").Preload("Items").Preload("Items.Product").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(filter model.OrderFilter) ([]*model.Order, error) {
	query := r.db.Model(&model.Order{}).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product")

	if filter.CustomerNameContains != "" {
		query = query.
			Joins("JOIN customers ON customers.id = orders.customer_id").
			Where("LOWER(customers.name) LIKE ?", contains(filter.CustomerNameContains))
	}
	if filter.ProductNameContains != "" || filter.ProductID != nil {
		query = query.
			Joins("JOIN order_items ON order_items.order_id = orders.id").
			Joins("JOIN products ON products.id = order_items.product_id").
			Distinct("orders.*")
		if filter.ProductNameContains != "" {
			query = query.Where("LOWER(products.name) LIKE ?", contains(filter.ProductNameContains))
		}
		if filter.ProductID != nil {
			query = query.Where("order_items.product_id = ?", *filter.ProductID)
		}
	}
	if filter.TotalAmountGte != nil {
		query = query.Where("orders.total_amount >= ?", *filter.TotalAmountGte)
	}
	if filter.TotalAmountLte != nil {
		query = query.Where("orders.total_amount <= ?", *filter.TotalAmountLte)
	}
	if filter.OrderDateGte != nil {
		query = query.Where("orders.order_date >= ?", *filter.OrderDateGte)
	}
	if filter.OrderDateLte != nil {
		query = query.Where("orders.order_date <= ?", *filter.OrderDateLte)
	}

	query, err := applyOrdering(query, filter.OrderBy, orderSortFields)
	if err != nil {
		return nil, err
	}

	var orders []*model.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) TotalRevenue() (decimal.Decimal, error) {
	row := r.db.Model(&model.Order{}).Select("COALESCE(SUM(total_amount), 0)").Row()
	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
