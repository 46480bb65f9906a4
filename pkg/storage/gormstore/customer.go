package gormstore

import (
	"errors"

	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/model"

	"gorm.io/gorm"
)

var customerSortFields = map[string]string{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

type customerRepository struct {
	db *gorm.DB
}

func (r *customerRepository) Store(customer *model.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepository) Find(id int64) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByEmail(email string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByName(name string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.Where("name = ?", name).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// Delete removes the customer together with its orders and their items in
// one transaction, so a cascade is guaranteed regardless of whether the
// underlying database enforces the declared foreign keys.
func (r *customerRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var customer model.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrCustomerNotFound
			}
			return err
		}

		var orderIDs []int64
		if err := tx.Model(&model.Order{}).Where("customer_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&model.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", orderIDs).Delete(&model.Order{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Customer{}, id).Error
	})
}

func (r *customerRepository) List(filter model.CustomerFilter) ([]*model.Customer, error) {
	query := r.db.Model(&model.Customer{})
	if filter.NameContains != "" {
		query = query.Where("LOWER(name) LIKE ?", contains(filter.NameContains))
	}
	if filter.EmailContains != "" {
		query = query.Where("LOWER(email) LIKE ?", contains(filter.EmailContains))
	}
	if filter.PhonePrefix != "" {
		query = query.Where("phone LIKE ?", prefix(filter.PhonePrefix))
	}
	if filter.CreatedAtGte != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAtGte)
	}
	if filter.CreatedAtLte != nil {
		query = query.Where("created_at <= ?", *filter.CreatedAtLte)
	}

	query, err := applyOrdering(query, filter.OrderBy, customerSortFields)
	if err != nil {
		return nil, err
	}

	var customers []*model.Customer
	if err := query.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Customer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
