package finance

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutristock/backend/internal/domain/shared"
	"github.com/nutristock/backend/internal/domain/shared/valueobject"
)

// EntryType represents the direction of a ledger entry
type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// IsValid checks if the value is a known entry type
func (t EntryType) IsValid() bool {
	return t == EntryIncome || t == EntryExpense
}

// SalesCategory is the ledger category used for income posted by the sale
// workflow. Kept in Portuguese to match the categories the store operates
// with.
const SalesCategory = "Vendas"

// LedgerEntry is a single record in the financial transaction log. Entries
// posted by the sale workflow carry SaleID as a back-reference; such entries
// never outlive their sale and may only be removed by cancelling it.
type LedgerEntry struct {
	shared.BaseEntity
	Type        EntryType       `gorm:"size:10;not null;index" json:"type"`
	Category    string          `gorm:"size:100;not null;index" json:"category"`
	Description string          `gorm:"size:500;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	SaleID      *uuid.UUID      `gorm:"type:uuid;index" json:"sale_id,omitempty"`
	Paid        bool            `gorm:"not null;default:false" json:"paid"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
}

// TableName sets the ledger entries table name
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

func newEntry(entryType EntryType, category, description string, amount valueobject.Money) (*LedgerEntry, error) {
	if !entryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTRY_TYPE", "Unknown entry type: "+string(entryType))
	}
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if description == "" {
		description = "Sem descrição"
	}

	return &LedgerEntry{
		BaseEntity:  shared.NewBaseEntity(),
		Type:        entryType,
		Category:    category,
		Description: description,
		Amount:      amount.Amount(),
	}, nil
}

// NewIncome creates a paid income entry. Income recorded by hand is money
// already received, so it is always paid.
func NewIncome(category, description string, amount valueobject.Money) (*LedgerEntry, error) {
	entry, err := newEntry(EntryIncome, category, description, amount)
	if err != nil {
		return nil, err
	}
	entry.Paid = true
	return entry, nil
}

// NewExpense creates an expense entry, unpaid by default with an optional
// due date.
func NewExpense(category, description string, amount valueobject.Money, dueDate *time.Time) (*LedgerEntry, error) {
	entry, err := newEntry(EntryExpense, category, description, amount)
	if err != nil {
		return nil, err
	}
	entry.DueDate = dueDate
	return entry, nil
}

// NewSaleIncome creates the income entry posted as a side effect of a sale:
// category "Vendas", paid, back-referencing the sale. shortSaleID and the
// payment method end up in the description the way receipts are labelled.
func NewSaleIncome(saleID uuid.UUID, shortSaleID, paymentMethod string, total valueobject.Money) (*LedgerEntry, error) {
	description := fmt.Sprintf("Venda #%s - %s", shortSaleID, strings.ToUpper(paymentMethod))
	entry, err := newEntry(EntryIncome, SalesCategory, description, total)
	if err != nil {
		return nil, err
	}
	entry.SaleID = &saleID
	entry.Paid = true
	return entry, nil
}

// IsLinkedToSale reports whether the entry was posted by the sale workflow.
func (e *LedgerEntry) IsLinkedToSale() bool {
	return e.SaleID != nil
}

// SetPaid updates the paid flag
func (e *LedgerEntry) SetPaid(paid bool) {
	e.Paid = paid
	e.UpdatedAt = time.Now()
}

// AmountMoney returns the amount as Money
func (e *LedgerEntry) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(e.Amount)
}
