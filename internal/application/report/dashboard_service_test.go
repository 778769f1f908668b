package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReportRepository is a mock implementation of ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) TotalPaidIncome(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportRepository) TotalExpenses(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportRepository) CountSales(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) CountLowStockProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) MonthlyTotals(ctx context.Context, months int) ([]MonthlyTotals, error) {
	args := m.Called(ctx, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]MonthlyTotals), args.Error(1)
}

func (m *MockReportRepository) SalesByCategory(ctx context.Context) ([]CategorySales, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CategorySales), args.Error(1)
}

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportRepository)
	service := NewDashboardService(repo, nil)

	repo.On("TotalPaidIncome", ctx).Return(decimal.NewFromFloat(4500.50), nil)
	repo.On("TotalExpenses", ctx).Return(decimal.NewFromFloat(1200.00), nil)
	repo.On("CountSales", ctx).Return(int64(37), nil)
	repo.On("CountProducts", ctx).Return(int64(42), nil)
	repo.On("CountLowStockProducts", ctx).Return(int64(3), nil)

	stats, err := service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, "4500.50", stats.TotalRevenue.StringFixed(2))
	assert.Equal(t, "1200.00", stats.TotalExpenses.StringFixed(2))
	assert.Equal(t, "3300.50", stats.NetProfit.StringFixed(2))
	assert.Equal(t, int64(37), stats.TotalSales)
	assert.Equal(t, int64(42), stats.TotalProducts)
	assert.Equal(t, int64(3), stats.LowStockProducts)
}

func TestDashboardService_MonthlySummary(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportRepository)
	service := NewDashboardService(repo, nil)

	months := []MonthlyTotals{
		{Month: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), Income: decimal.NewFromInt(2000), Expenses: decimal.NewFromInt(800)},
		{Month: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Income: decimal.NewFromInt(2500), Expenses: decimal.NewFromInt(400)},
	}
	repo.On("MonthlyTotals", ctx, 6).Return(months, nil)

	t.Run("defaults the window to six months", func(t *testing.T) {
		result, err := service.MonthlySummary(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, result, 2)
		repo.AssertCalled(t, "MonthlyTotals", ctx, 6)
	})
}

func TestDashboardService_SalesByCategory(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportRepository)
	service := NewDashboardService(repo, nil)

	repo.On("SalesByCategory", ctx).Return([]CategorySales{
		{Category: "Proteínas", Quantity: 25, Revenue: decimal.NewFromFloat(2247.50)},
	}, nil)

	result, err := service.SalesByCategory(ctx)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Proteínas", result[0].Category)
	assert.Equal(t, int64(25), result[0].Quantity)
}
