package partner

import (
	"time"

	"github.com/nutristock/backend/internal/domain/shared"
	"github.com/nutristock/backend/internal/domain/shared/valueobject"
)

// Customer is a store customer reached over WhatsApp; the phone number is
// mandatory and normalized to the +55 E.164-like form.
type Customer struct {
	shared.BaseAggregateRoot
	Name  string `gorm:"size:200;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`
}

// TableName sets the customers table name
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with a validated phone number
func NewCustomer(name, phone string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	p, err := valueobject.NewPhone(phone)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PHONE", err.Error())
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             p.String(),
	}, nil
}

// Rename changes the customer name
func (c *Customer) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// ChangePhone validates and replaces the phone number
func (c *Customer) ChangePhone(phone string) error {
	p, err := valueobject.NewPhone(phone)
	if err != nil {
		return shared.NewDomainError("INVALID_PHONE", err.Error())
	}
	c.Phone = p.String()
	c.UpdatedAt = time.Now()
	return nil
}
