package report

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DashboardStats is the headline figure block shown on the store dashboard.
type DashboardStats struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetProfit        decimal.Decimal `json:"net_profit"`
	TotalSales       int64           `json:"total_sales"`
	TotalProducts    int64           `json:"total_products"`
	LowStockProducts int64           `json:"low_stock_products"`
}

// DashboardService assembles reporting views from the aggregate queries.
type DashboardService struct {
	reports ReportRepository
	logger  *zap.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(reports ReportRepository, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{reports: reports, logger: logger}
}

// Stats returns the dashboard headline figures. Revenue counts only paid
// income, expenses count regardless of payment so upcoming bills already
// weigh on the net figure.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	revenue, err := s.reports.TotalPaidIncome(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.reports.TotalExpenses(ctx)
	if err != nil {
		return nil, err
	}
	totalSales, err := s.reports.CountSales(ctx)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.reports.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.reports.CountLowStockProducts(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalRevenue:     revenue,
		TotalExpenses:    expenses,
		NetProfit:        revenue.Sub(expenses),
		TotalSales:       totalSales,
		TotalProducts:    totalProducts,
		LowStockProducts: lowStock,
	}, nil
}

// MonthlySummary returns income and expense totals per month, oldest first.
func (s *DashboardService) MonthlySummary(ctx context.Context, months int) ([]MonthlyTotals, error) {
	if months <= 0 {
		months = 6
	}
	return s.reports.MonthlyTotals(ctx, months)
}

// SalesByCategory returns sold quantity and revenue per product category.
func (s *DashboardService) SalesByCategory(ctx context.Context) ([]CategorySales, error) {
	return s.reports.SalesByCategory(ctx)
}
