package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutristock/backend/internal/domain/sales"
)

// CartItem is one product/quantity pair submitted by the point of sale.
// The unit price is deliberately absent: prices are read from the catalog
// at submission time.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// CreateSaleRequest is the checkout input
type CreateSaleRequest struct {
	Items         []CartItem `json:"items"`
	PaymentMethod string     `json:"payment_method" binding:"omitempty,payment_method"`
	CustomerID    *uuid.UUID `json:"customer_id,omitempty"`
}

// SaleItemResponse represents a sale line item in API responses
type SaleItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	Date          time.Time          `json:"date"`
	Items         []SaleItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	CustomerID    *uuid.UUID         `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name,omitempty"`
}

// ToSaleResponse converts a sale aggregate to its response representation
func ToSaleResponse(sale *sales.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	return SaleResponse{
		ID:            sale.ID,
		Date:          sale.CreatedAt,
		Items:         items,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod.String(),
		Status:        string(sale.Status),
		CustomerID:    sale.CustomerID,
		CustomerName:  sale.CustomerName,
	}
}

// ToSaleResponses converts a slice of sales
func ToSaleResponses(items []sales.Sale) []SaleResponse {
	responses := make([]SaleResponse, 0, len(items))
	for idx := range items {
		responses = append(responses, ToSaleResponse(&items[idx]))
	}
	return responses
}
