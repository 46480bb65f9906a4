package gormstore

import (
	"errors"

	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/model"

	"gorm.io/gorm"
)

var productSortFields = map[string]string{
	"name":  "name",
	"price": "price",
	"stock": "stock",
}

type productRepository struct {
	db *gorm.DB
}

func (r *productRepository) Store(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Find(id int64) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByName(name string) (*model.Product, error) {
	var product model.Product
	if err := r.db.Where("name = ?", name).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByIDs(ids []int64) ([]*model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []*model.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindBelowStock(threshold int) ([]*model.Product, error) {
	var products []*model.Product
	if err := r.db.Where("stock < ?", threshold).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) List(filter model.ProductFilter) ([]*model.Product, error) {
	query := r.db.Model(&model.Product{})
	if filter.NameContains != "" {
		query = query.Where("LOWER(name) LIKE ?", contains(filter.NameContains))
	}
	if filter.PriceGte != nil {
		query = query.Where("price >= ?", *filter.PriceGte)
	}
	if filter.PriceLte != nil {
		query = query.Where("price <= ?", *filter.PriceLte)
	}
	if filter.StockGte != nil {
		query = query.Where("stock >= ?", *filter.StockGte)
	}
	if filter.StockLte != nil {
		query = query.Where("stock <= ?", *filter.StockLte)
	}
	if filter.LowStockOnly {
		query = query.Where("stock < ?", model.LowStockThreshold)
	}

	query, err := applyOrdering(query, filter.OrderBy, productSortFields)
	if err != nil {
		return nil, err
	}

	var products []*model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
