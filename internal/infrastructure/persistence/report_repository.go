package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nutristock/backend/internal/application/report"
	"github.com/nutristock/backend/internal/domain/catalog"
	"github.com/nutristock/backend/internal/domain/finance"
	"github.com/nutristock/backend/internal/domain/sales"
)

// GormReportRepository implements report.ReportRepository with SQL aggregates
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// TotalPaidIncome sums paid income ledger entries
func (r *GormReportRepository) TotalPaidIncome(ctx context.Context) (decimal.Decimal, error) {
	return r.sumEntries(ctx, "type = ? AND paid = ?", string(finance.EntryIncome), true)
}

// TotalExpenses sums all expense ledger entries, paid or not
func (r *GormReportRepository) TotalExpenses(ctx context.Context) (decimal.Decimal, error) {
	return r.sumEntries(ctx, "type = ?", string(finance.EntryExpense))
}

func (r *GormReportRepository) sumEntries(ctx context.Context, cond string, args ...any) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&finance.LedgerEntry{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where(cond, args...).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// CountSales returns the total number of recorded sales
func (r *GormReportRepository) CountSales(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&sales.Sale{}).Count(&count).Error
	return count, err
}

// CountProducts returns the total number of catalog products
func (r *GormReportRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Product{}).Count(&count).Error
	return count, err
}

// CountLowStockProducts returns the number of products at or below threshold
func (r *GormReportRepository) CountLowStockProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("stock <= min_stock").
		Count(&count).Error
	return count, err
}

// MonthlyTotals returns per-month income and expense sums for the last months
// calendar months, oldest first. Months without movement are absent.
func (r *GormReportRepository) MonthlyTotals(ctx context.Context, months int) ([]report.MonthlyTotals, error) {
	since := time.Now().AddDate(0, -months, 0)

	var rows []struct {
		Month    time.Time
		Income   decimal.Decimal
		Expenses decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT date_trunc('month', created_at) AS month,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'income' AND paid), 0) AS income,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0) AS expenses
		FROM ledger_entries
		WHERE created_at >= ?
		GROUP BY 1
		ORDER BY 1`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]report.MonthlyTotals, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, report.MonthlyTotals{
			Month:    row.Month,
			Income:   row.Income,
			Expenses: row.Expenses,
		})
	}
	return totals, nil
}

// SalesByCategory returns sold quantity and revenue grouped by the catalog
// category of the sold product
func (r *GormReportRepository) SalesByCategory(ctx context.Context) ([]report.CategorySales, error) {
	var rows []struct {
		Category string
		Quantity int64
		Revenue  decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(p.category, 'Sem categoria') AS category,
		       SUM(si.quantity) AS quantity,
		       SUM(si.subtotal) AS revenue
		FROM sale_items si
		LEFT JOIN products p ON p.id = si.product_id
		GROUP BY 1
		ORDER BY revenue DESC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]report.CategorySales, 0, len(rows))
	for _, row := range rows {
		result = append(result, report.CategorySales{
			Category: row.Category,
			Quantity: row.Quantity,
			Revenue:  row.Revenue,
		})
	}
	return result, nil
}

var _ report.ReportRepository = (*GormReportRepository)(nil)
