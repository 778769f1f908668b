package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/nutristock/backend/internal/domain/partner"
)

// CreateCustomerRequest is the input for registering a customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// UpdateCustomerRequest carries the optional fields of a partial edit
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a customer to its response representation
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of customers
func ToCustomerResponses(items []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(items))
	for idx := range items {
		responses = append(responses, ToCustomerResponse(&items[idx]))
	}
	return responses
}
