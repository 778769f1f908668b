package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutristock/backend/internal/domain/finance"
)

// CreateEntryRequest is the input for recording a ledger entry by hand
type CreateEntryRequest struct {
	Type        string          `json:"type" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
}

// EntryResponse represents a ledger entry in API responses
type EntryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	SaleID      *uuid.UUID      `json:"sale_id,omitempty"`
	Paid        bool            `json:"paid"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToEntryResponse converts a ledger entry to its response representation
func ToEntryResponse(e *finance.LedgerEntry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		Type:        string(e.Type),
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		SaleID:      e.SaleID,
		Paid:        e.Paid,
		DueDate:     e.DueDate,
		CreatedAt:   e.CreatedAt,
	}
}

// ToEntryResponses converts a slice of ledger entries
func ToEntryResponses(items []finance.LedgerEntry) []EntryResponse {
	responses := make([]EntryResponse, 0, len(items))
	for idx := range items {
		responses = append(responses, ToEntryResponse(&items[idx]))
	}
	return responses
}
