package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutristock/backend/internal/domain/catalog"
)

// CreateProductRequest is the input for registering a product
type CreateProductRequest struct {
	Name                     string          `json:"name" binding:"required"`
	Category                 string          `json:"category" binding:"required"`
	Supplier                 string          `json:"supplier"`
	Description              string          `json:"description"`
	Price                    decimal.Decimal `json:"price"`
	Cost                     decimal.Decimal `json:"cost"`
	Stock                    int             `json:"stock"`
	MinStock                 int             `json:"min_stock"`
	EstimatedConsumptionDays *int            `json:"estimated_consumption_days,omitempty"`
}

// UpdateProductRequest carries the optional fields of a partial edit.
// Absent fields keep their current value.
type UpdateProductRequest struct {
	Name                     *string          `json:"name,omitempty"`
	Category                 *string          `json:"category,omitempty"`
	Supplier                 *string          `json:"supplier,omitempty"`
	Description              *string          `json:"description,omitempty"`
	Price                    *decimal.Decimal `json:"price,omitempty"`
	Cost                     *decimal.Decimal `json:"cost,omitempty"`
	Stock                    *int             `json:"stock,omitempty"`
	MinStock                 *int             `json:"min_stock,omitempty"`
	EstimatedConsumptionDays *int             `json:"estimated_consumption_days,omitempty"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID                       uuid.UUID       `json:"id"`
	Name                     string          `json:"name"`
	Category                 string          `json:"category"`
	Supplier                 string          `json:"supplier"`
	Description              string          `json:"description,omitempty"`
	Price                    decimal.Decimal `json:"price"`
	Cost                     decimal.Decimal `json:"cost"`
	Stock                    int             `json:"stock"`
	MinStock                 int             `json:"min_stock"`
	LowStock                 bool            `json:"low_stock"`
	EstimatedConsumptionDays *int            `json:"estimated_consumption_days,omitempty"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
}

// ToProductResponse converts a product aggregate to its response representation
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:                       p.ID,
		Name:                     p.Name,
		Category:                 p.Category,
		Supplier:                 p.Supplier,
		Description:              p.Description,
		Price:                    p.Price,
		Cost:                     p.Cost,
		Stock:                    p.Stock,
		MinStock:                 p.MinStock,
		LowStock:                 p.IsLowStock(),
		EstimatedConsumptionDays: p.EstimatedConsumptionDays,
		CreatedAt:                p.CreatedAt,
		UpdatedAt:                p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(items []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(items))
	for idx := range items {
		responses = append(responses, ToProductResponse(&items[idx]))
	}
	return responses
}
