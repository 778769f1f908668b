package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/nutristock/backend/internal/domain/shared"
	"github.com/nutristock/backend/internal/domain/shared/valueobject"
)

// Product is a catalog aggregate root: a supplement SKU with its sale price,
// purchase cost and authoritative stock count.
type Product struct {
	shared.BaseAggregateRoot
	Name                     string          `gorm:"size:200;not null" json:"name"`
	Category                 string          `gorm:"size:100;not null;index" json:"category"`
	Supplier                 string          `gorm:"size:200" json:"supplier"`
	Description              string          `gorm:"size:1000" json:"description,omitempty"`
	Price                    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Cost                     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"cost"`
	Stock                    int             `gorm:"not null;default:0" json:"stock"`
	MinStock                 int             `gorm:"not null;default:0" json:"min_stock"`
	EstimatedConsumptionDays *int            `json:"estimated_consumption_days,omitempty"`
}

// TableName sets the products table name
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, category, supplier string, price, cost decimal.Decimal, stock, minStock int) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Product category cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Product cost cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}
	if minStock < 0 {
		return nil, shared.NewDomainError("INVALID_MIN_STOCK", "Product minimum stock cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Category:          category,
		Supplier:          supplier,
		Price:             price,
		Cost:              cost,
		Stock:             stock,
		MinStock:          minStock,
	}, nil
}

// HasStock reports whether at least quantity units are on hand.
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && p.Stock >= quantity
}

// DecreaseStock removes quantity units. Stock never goes negative.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.Stock < quantity {
		return shared.NewInsufficientStockError(p.Name, p.Stock, quantity)
	}
	p.Stock -= quantity
	return nil
}

// IncreaseStock adds quantity units. There is no upper bound: a restore after
// a cancelled sale simply undoes a prior decrement, regardless of edits made
// in between.
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	p.Stock += quantity
	return nil
}

// IsLowStock reports whether the product is at or below its reorder threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// UnitPrice returns the current sale price as Money
func (p *Product) UnitPrice() valueobject.Money {
	return valueobject.NewMoneyBRL(p.Price)
}

// Margin returns price minus cost per unit.
func (p *Product) Margin() decimal.Decimal {
	return p.Price.Sub(p.Cost)
}

// ProductUpdate carries the optional fields of a partial product edit.
type ProductUpdate struct {
	Name                     *string
	Category                 *string
	Supplier                 *string
	Description              *string
	Price                    *decimal.Decimal
	Cost                     *decimal.Decimal
	Stock                    *int
	MinStock                 *int
	EstimatedConsumptionDays *int
}

// Apply applies a partial update, validating each provided field.
func (p *Product) Apply(upd ProductUpdate) error {
	if upd.Name != nil {
		if *upd.Name == "" {
			return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
		}
		p.Name = *upd.Name
	}
	if upd.Category != nil {
		if *upd.Category == "" {
			return shared.NewDomainError("INVALID_CATEGORY", "Product category cannot be empty")
		}
		p.Category = *upd.Category
	}
	if upd.Supplier != nil {
		p.Supplier = *upd.Supplier
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		if upd.Price.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
		}
		p.Price = *upd.Price
	}
	if upd.Cost != nil {
		if upd.Cost.IsNegative() {
			return shared.NewDomainError("INVALID_COST", "Product cost cannot be negative")
		}
		p.Cost = *upd.Cost
	}
	if upd.Stock != nil {
		if *upd.Stock < 0 {
			return shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
		}
		p.Stock = *upd.Stock
	}
	if upd.MinStock != nil {
		if *upd.MinStock < 0 {
			return shared.NewDomainError("INVALID_MIN_STOCK", "Product minimum stock cannot be negative")
		}
		p.MinStock = *upd.MinStock
	}
	if upd.EstimatedConsumptionDays != nil {
		p.EstimatedConsumptionDays = upd.EstimatedConsumptionDays
	}
	return nil
}
