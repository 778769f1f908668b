package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTotals aggregates ledger movement for one calendar month.
type MonthlyTotals struct {
	Month    time.Time       `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// CategorySales aggregates sold quantity and revenue per product category.
type CategorySales struct {
	Category string          `json:"category"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// ReportRepository runs the aggregate queries behind the dashboard. The
// numbers come straight from SQL aggregation, never from iterating rows in
// memory.
type ReportRepository interface {
	// TotalPaidIncome sums paid income ledger entries.
	TotalPaidIncome(ctx context.Context) (decimal.Decimal, error)
	// TotalExpenses sums all expense ledger entries, paid or not.
	TotalExpenses(ctx context.Context) (decimal.Decimal, error)
	CountSales(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountLowStockProducts(ctx context.Context) (int64, error)
	// MonthlyTotals returns per-month income and expense sums for the last
	// months calendar months, oldest first.
	MonthlyTotals(ctx context.Context, months int) ([]MonthlyTotals, error)
	// SalesByCategory returns sold quantity and revenue grouped by the
	// catalog category of the sold product. Items whose product was since
	// deleted are reported under "Sem categoria".
	SalesByCategory(ctx context.Context) ([]CategorySales, error)
}
