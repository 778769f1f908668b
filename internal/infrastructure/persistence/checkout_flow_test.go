package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appsales "github.com/nutristock/backend/internal/application/sales"
	"github.com/nutristock/backend/internal/domain/catalog"
	"github.com/nutristock/backend/internal/domain/finance"
	"github.com/nutristock/backend/internal/domain/partner"
	"github.com/nutristock/backend/internal/domain/sales"
	"github.com/nutristock/backend/internal/domain/shared"
)

func setupCheckoutTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Product{},
		&partner.Customer{},
		&sales.Sale{},
		&sales.SaleItem{},
		&finance.LedgerEntry{},
	)
	require.NoError(t, err)

	return db
}

func newCheckoutService(db *gorm.DB) *appsales.CheckoutService {
	return appsales.NewCheckoutService(
		NewGormProductRepository(db),
		NewGormSaleRepository(db),
		NewGormCustomerRepository(db),
		NewGormTransactionScope(db),
		nil,
	)
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, "Proteínas", "Growth Supplements",
		decimal.NewFromFloat(price), decimal.NewFromFloat(price/2), stock, 5)
	require.NoError(t, err)
	require.NoError(t, NewGormProductRepository(db).Save(context.Background(), product))
	return product
}

func TestCheckoutFlow_CreateSale(t *testing.T) {
	ctx := context.Background()

	t.Run("persists sale, decrements stock and posts ledger entry", func(t *testing.T) {
		db := setupCheckoutTestDB(t)
		service := newCheckoutService(db)
		product := seedProduct(t, db, "Whey Protein", 89.90, 10)

		result, err := service.CreateSale(ctx, appsales.CreateSaleRequest{
			Items:         []appsales.CartItem{{ProductID: product.ID, Quantity: 3}},
			PaymentMethod: "pix",
		})
		require.NoError(t, err)

		// Stock decremented by exactly the sold quantity
		reloaded, err := NewGormProductRepository(db).FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, reloaded.Stock)

		// Sale is readable with its items
		sale, err := NewGormSaleRepository(db).FindByID(ctx, result.ID)
		require.NoError(t, err)
		require.Len(t, sale.Items, 1)
		assert.Equal(t, "269.70", sale.Total.StringFixed(2))

		// Exactly one paid income entry in the sales category
		var entries []finance.LedgerEntry
		require.NoError(t, db.Find(&entries, "sale_id = ?", result.ID).Error)
		require.Len(t, entries, 1)
		assert.Equal(t, finance.EntryIncome, entries[0].Type)
		assert.Equal(t, finance.SalesCategory, entries[0].Category)
		assert.True(t, entries[0].Paid)
		assert.Equal(t, "Venda #"+sale.ShortID()+" - PIX", entries[0].Description)
	})

	t.Run("insufficient stock leaves everything untouched", func(t *testing.T) {
		db := setupCheckoutTestDB(t)
		service := newCheckoutService(db)
		plenty := seedProduct(t, db, "Whey Protein", 89.90, 100)
		short := seedProduct(t, db, "Creatina", 69.90, 2)

		_, err := service.CreateSale(ctx, appsales.CreateSaleRequest{
			Items: []appsales.CartItem{
				{ProductID: plenty.ID, Quantity: 1},
				{ProductID: short.ID, Quantity: 5},
			},
			PaymentMethod: "cash",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.ErrInsufficientStock.Code, domainErr.Code)

		reloaded, err := NewGormProductRepository(db).FindByID(ctx, plenty.ID)
		require.NoError(t, err)
		assert.Equal(t, 100, reloaded.Stock)

		var saleCount, entryCount int64
		require.NoError(t, db.Model(&sales.Sale{}).Count(&saleCount).Error)
		require.NoError(t, db.Model(&finance.LedgerEntry{}).Count(&entryCount).Error)
		assert.Zero(t, saleCount)
		assert.Zero(t, entryCount)
	})
}

func TestCheckoutFlow_CancelSale(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel restores the world to its pre-sale state", func(t *testing.T) {
		db := setupCheckoutTestDB(t)
		service := newCheckoutService(db)
		product := seedProduct(t, db, "Whey Protein", 89.90, 10)

		result, err := service.CreateSale(ctx, appsales.CreateSaleRequest{
			Items:         []appsales.CartItem{{ProductID: product.ID, Quantity: 4}},
			PaymentMethod: "debit",
		})
		require.NoError(t, err)

		require.NoError(t, service.CancelSale(ctx, result.ID))

		reloaded, err := NewGormProductRepository(db).FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, reloaded.Stock)

		var saleCount, itemCount, entryCount int64
		require.NoError(t, db.Model(&sales.Sale{}).Count(&saleCount).Error)
		require.NoError(t, db.Model(&sales.SaleItem{}).Count(&itemCount).Error)
		require.NoError(t, db.Model(&finance.LedgerEntry{}).Count(&entryCount).Error)
		assert.Zero(t, saleCount)
		assert.Zero(t, itemCount)
		assert.Zero(t, entryCount)
	})

	t.Run("cancelling twice fails the second time", func(t *testing.T) {
		db := setupCheckoutTestDB(t)
		service := newCheckoutService(db)
		product := seedProduct(t, db, "Creatina", 69.90, 10)

		result, err := service.CreateSale(ctx, appsales.CreateSaleRequest{
			Items:         []appsales.CartItem{{ProductID: product.ID, Quantity: 1}},
			PaymentMethod: "pix",
		})
		require.NoError(t, err)

		require.NoError(t, service.CancelSale(ctx, result.ID))
		assert.ErrorIs(t, service.CancelSale(ctx, result.ID), shared.ErrSaleNotFound)

		// Stock restored exactly once
		reloaded, err := NewGormProductRepository(db).FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, reloaded.Stock)
	})
}
