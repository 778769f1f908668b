package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutristock/backend/internal/domain/shared"
	"github.com/nutristock/backend/internal/domain/shared/valueobject"
)

// PaymentMethod represents how a sale was paid
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentPix    PaymentMethod = "pix"
)

// IsValid checks if the value is a known payment method
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCredit, PaymentDebit, PaymentPix:
		return true
	}
	return false
}

// String returns the string representation of the payment method
func (m PaymentMethod) String() string {
	return string(m)
}

// SaleStatus represents the status of a sale
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusPending   SaleStatus = "pending"
	// SaleStatusCancelled exists for API compatibility; cancellation removes
	// the sale and its side effects instead of marking it.
	SaleStatusCancelled SaleStatus = "cancelled"
)

// SaleItem is a line item of a sale. Product name and unit price are copied
// at sale time so later catalog edits never alter recorded history.
type SaleItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string          `gorm:"size:200;not null" json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName sets the sale items table name
func (SaleItem) TableName() string {
	return "sale_items"
}

// Sale is the sale aggregate root: the header plus its owned line items,
// created and deleted as one unit.
type Sale struct {
	shared.BaseAggregateRoot
	Items         []SaleItem      `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	PaymentMethod PaymentMethod   `gorm:"size:20;not null" json:"payment_method"`
	Status        SaleStatus      `gorm:"size:20;not null" json:"status"`
	CustomerID    *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CustomerName  string          `gorm:"size:200" json:"customer_name,omitempty"`
}

// TableName sets the sales table name
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a sale header in completed status. A sale only exists once
// payment was collected at the point of sale.
func NewSale(method PaymentMethod, customerID *uuid.UUID, customerName string) (*Sale, error) {
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method: "+string(method))
	}

	return &Sale{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Items:             make([]SaleItem, 0),
		Total:             decimal.Zero,
		PaymentMethod:     method,
		Status:            SaleStatusCompleted,
		CustomerID:        customerID,
		CustomerName:      customerName,
	}, nil
}

// AddItem appends a line item, denormalizing the product name and unit price.
// A product already present in the sale has its quantity merged into the
// existing line, so stock accounting sees each product exactly once.
func (s *Sale) AddItem(productID uuid.UUID, productName string, quantity int, unitPrice valueobject.Money) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	for idx := range s.Items {
		if s.Items[idx].ProductID == productID {
			s.Items[idx].Quantity += quantity
			s.Items[idx].Subtotal = unitPrice.Amount().Mul(decimal.NewFromInt(int64(s.Items[idx].Quantity)))
			s.recalculateTotal()
			return nil
		}
	}

	s.Items = append(s.Items, SaleItem{
		ID:          uuid.New(),
		SaleID:      s.ID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Amount(),
		Subtotal:    unitPrice.Amount().Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt:   time.Now(),
	})
	s.recalculateTotal()
	return nil
}

// recalculateTotal keeps Total equal to the sum of item subtotals.
func (s *Sale) recalculateTotal() {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Subtotal)
	}
	s.Total = total
	s.UpdatedAt = time.Now()
}

// TotalMoney returns the sale total as Money
func (s *Sale) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(s.Total)
}

// ItemCount returns the number of line items
func (s *Sale) ItemCount() int {
	return len(s.Items)
}

// QuantityOf returns the quantity recorded for a product, 0 if absent.
func (s *Sale) QuantityOf(productID uuid.UUID) int {
	for _, item := range s.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// ShortID returns the first 8 characters of the sale id, used in ledger
// entry descriptions the same way receipts reference sales.
func (s *Sale) ShortID() string {
	return s.ID.String()[:8]
}
