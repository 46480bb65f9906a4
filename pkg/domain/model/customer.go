package model

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerNameRequired  = errors.New("customer name is required")
	ErrCustomerEmailRequired = errors.New("customer email is required")
	ErrCustomerNameExists    = errors.New("customer with this name already exists")
	ErrCustomerEmailExists   = errors.New("customer with this email already exists")
	ErrCustomerPhoneInvalid  = errors.New("customer phone must be in the format +1234567890 or 123-456-7890")
)

// phonePattern accepts an international number of 7 to 15 digits with an
// optional leading plus, or the dashed NNN-NNN-NNNN form.
var phonePattern = regexp.MustCompile(`^(\+?\d{7,15}|\d{3}-\d{3}-\d{4})$`)

func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

type Customer struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerInput carries the caller-supplied fields for creating a customer.
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// CustomerFilter narrows and orders a customer listing. Zero-valued fields
// are ignored; set predicates are combined with AND.
type CustomerFilter struct {
	NameContains  string
	EmailContains string
	PhonePrefix   string
	CreatedAtGte  *time.Time
	CreatedAtLte  *time.Time

	// OrderBy lists sortable field names; a "-" prefix sorts descending.
	OrderBy []string
}

type CustomerRepository interface {
	Store(customer *Customer) error
	Find(id int64) (*Customer, error)
	FindByEmail(email string) (*Customer, error)
	FindByName(name string) (*Customer, error)
	// Delete removes the customer and, by cascade, all of its orders.
	Delete(id int64) error
	List(filter CustomerFilter) ([]*Customer, error)
	Count() (int64, error)
}
