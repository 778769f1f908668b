package sales

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nutristock/backend/internal/domain/catalog"
	"github.com/nutristock/backend/internal/domain/finance"
	"github.com/nutristock/backend/internal/domain/partner"
	"github.com/nutristock/backend/internal/domain/sales"
	"github.com/nutristock/backend/internal/domain/shared"
	"github.com/nutristock/backend/internal/domain/shared/valueobject"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindLowStock(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountLowStock(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) RestoreStock(ctx context.Context, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

// MockSaleRepository is a mock implementation of sales.SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Sale, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) DeleteItemsBySale(ctx context.Context, saleID uuid.UUID) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

func (m *MockSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSaleRepository) ExistsByCustomer(ctx context.Context, customerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

// MockLedgerRepository is a mock implementation of finance.LedgerEntryRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.LedgerEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.LedgerEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) Save(ctx context.Context, entry *finance.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteBySale(ctx context.Context, saleID uuid.UUID) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

func (m *MockLedgerRepository) UpdatePaid(ctx context.Context, id uuid.UUID, paid bool) error {
	args := m.Called(ctx, id, paid)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type checkoutFixture struct {
	products  *MockProductRepository
	saleRepo  *MockSaleRepository
	customers *MockCustomerRepository
	ledger    *MockLedgerRepository
	service   *CheckoutService
}

func newCheckoutFixture() *checkoutFixture {
	products := new(MockProductRepository)
	saleRepo := new(MockSaleRepository)
	customers := new(MockCustomerRepository)
	ledger := new(MockLedgerRepository)
	scope := NewNoOpTransactionScope(products, saleRepo, ledger)
	return &checkoutFixture{
		products:  products,
		saleRepo:  saleRepo,
		customers: customers,
		ledger:    ledger,
		service:   NewCheckoutService(products, saleRepo, customers, scope, nil),
	}
}

func newCatalogProduct(t *testing.T, name string, price float64, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, "Proteínas", "Growth Supplements",
		decimal.NewFromFloat(price), decimal.NewFromFloat(price/2), stock, 5)
	require.NoError(t, err)
	return p
}

func TestCheckoutService_CreateSale(t *testing.T) {
	ctx := context.Background()

	t.Run("records sale, decrements stock and posts ledger entry", func(t *testing.T) {
		f := newCheckoutFixture()
		product := newCatalogProduct(t, "Whey Protein", 50.0, 10)

		f.products.On("FindByID", ctx, product.ID).Return(product, nil)
		f.saleRepo.On("Save", ctx, mock.AnythingOfType("*sales.Sale")).Return(nil)
		f.products.On("DecrementStock", ctx, product.ID, 3).Return(nil)
		f.ledger.On("Save", ctx, mock.MatchedBy(func(entry *finance.LedgerEntry) bool {
			return entry.Type == finance.EntryIncome &&
				entry.Category == finance.SalesCategory &&
				entry.Paid &&
				entry.SaleID != nil &&
				entry.Amount.Equal(decimal.NewFromFloat(150.0))
		})).Return(nil)

		result, err := f.service.CreateSale(ctx, CreateSaleRequest{
			Items:         []CartItem{{ProductID: product.ID, Quantity: 3}},
			PaymentMethod: "pix",
		})

		require.NoError(t, err)
		assert.Equal(t, "150.00", result.Total.StringFixed(2))
		assert.Equal(t, "completed", result.Status)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Whey Protein", result.Items[0].ProductName)
		assert.Equal(t, "50.00", result.Items[0].UnitPrice.StringFixed(2))
		f.products.AssertExpectations(t)
		f.saleRepo.AssertExpectations(t)
		f.ledger.AssertExpectations(t)
	})

	t.Run("uses catalog price, ignoring whatever the caller claims", func(t *testing.T) {
		// CartItem carries no price field at all; this documents the
		// tamper-proofing by asserting the total follows a catalog edit.
		f := newCheckoutFixture()
		product := newCatalogProduct(t, "Creatina", 69.90, 10)

		f.products.On("FindByID", ctx, product.ID).Return(product, nil)
		f.saleRepo.On("Save", ctx, mock.Anything).Return(nil)
		f.products.On("DecrementStock", ctx, product.ID, 1).Return(nil)
		f.ledger.On("Save", ctx, mock.Anything).Return(nil)

		result, err := f.service.CreateSale(ctx, CreateSaleRequest{
			Items:         []CartItem{{ProductID: product.ID, Quantity: 1}},
			PaymentMethod: "cash",
		})

		require.NoError(t, err)
		assert.Equal(t, "69.90", result.Total.StringFixed(2))
	})

	t.Run("merges duplicate cart lines into one decrement", func(t *testing.T) {
		f := newCheckoutFixture()
		product := newCatalogProduct(t, "BCAA", 54.90, 10)

		f.products.On("FindByID", ctx, product.ID).Return(product, nil)
		f.saleRepo.On("Save", ctx, mock.Anything).Return(nil)
		// Exactly one decrement, for the summed quantity.
		f.products.On("DecrementStock", ctx, product.ID, 5).Return(nil).Once()
		f.ledger.On("Save", ctx, mock.Anything).Return(nil)

		result, err := f.service.CreateSale(ctx, CreateSaleRequest{
			Items: []CartItem{
				{ProductID: product.ID, Quantity: 2},
				{ProductID: product.ID, Quantity: 3},
			},
			PaymentMethod: "debit",
		})

		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, 5, result.Items[0].Quantity)
		f.products.AssertExpectations(t)
	})

	t.Run("rejects empty cart before any I/O", func(t *testing.T) {
		f := newCheckoutFixture()

		_, err := f.service.CreateSale(ctx, CreateSaleRequest{PaymentMethod: "cash"})

		assert.ErrorIs(t, err, shared.ErrEmptyCart)
		f.products.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		f.saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects whole cart when one line is short, touching nothing", func(t *testing.T) {
		f := newCheckoutFixture()
		plenty := newCatalogProduct(t, "Whey Protein", 89.90, 100)
		short := newCatalogProduct(t, "Multivitamínico", 39.90, 2)

		f.products.On("FindByID", ctx, plenty.ID).Return(plenty, nil)
		f.products.On("FindByID", ctx, short.ID).Return(short, nil)

		_, err := f.service.CreateSale(ctx, CreateSaleRequest{
			Items: []CartItem{
				{ProductID: plenty.ID, Quantity: 1},
				{ProductID: short.ID, Quantity: 3},
			},
			PaymentMethod: "pix",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.ErrInsufficientStock.Code, domainErr.Code)
		assert.Contains(t, domainErr.Message, "Multivitamínico")
		f.products.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
		f.saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		f.ledger.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		f := newCheckoutFixture()
		missing := uuid.New()

		f.products.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

		_, err := f.service.CreateSale(ctx, CreateSaleRequest{
			Items:         []CartItem{{ProductID: missing, Quantity: 1}},
			PaymentMethod: "cash",
		})

		assert.ErrorIs(t, err, shared.ErrProductNotFound)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		f := newCheckoutFixture()

		_, err := f.service.CreateSale(ctx, CreateSaleRequest{
			Items:         []CartItem{{ProductID: uuid.New(), Quantity: 1}},
			PaymentMethod: "barter",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PAYMENT_METHOD", domainErr.Code)
	})

	t.Run("denormalizes customer name into the sale", func(t *testing.T) {
		f := newCheckoutFixture()
		product := newCatalogProduct(t, "Whey Protein", 50.0, 10)
		customer, err := partner.NewCustomer("Maria Silva", "+5511987654321")
		require.NoError(t, err)

		f.products.On("FindByID", ctx, product.ID).Return(product, nil)
		f.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
		f.saleRepo.On("Save", ctx, mock.Anything).Return(nil)
		f.products.On("DecrementStock", ctx, product.ID, 1).Return(nil)
		f.ledger.On("Save", ctx, mock.Anything).Return(nil)

		result, err := f.service.CreateSale(ctx, CreateSaleRequest{
			Items:         []CartItem{{ProductID: product.ID, Quantity: 1}},
			PaymentMethod: "credit",
			CustomerID:    &customer.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", result.CustomerName)
	})

	t.Run("concurrent shortage surfaces from the conditional decrement", func(t *testing.T) {
		f := newCheckoutFixture()
		product := newCatalogProduct(t, "Pré-Treino", 79.90, 5)

		f.products.On("FindByID", ctx, product.ID).Return(product, nil)
		f.saleRepo.On("Save", ctx, mock.Anything).Return(nil)
		f.products.On("DecrementStock", ctx, product.ID, 5).Return(shared.ErrInsufficientStock)

		_, err := f.service.CreateSale(ctx, CreateSaleRequest{
			Items:         []CartItem{{ProductID: product.ID, Quantity: 5}},
			PaymentMethod: "pix",
		})

		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		f.ledger.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCheckoutService_CancelSale(t *testing.T) {
	ctx := context.Background()

	committedSale := func(t *testing.T) (*sales.Sale, uuid.UUID, uuid.UUID) {
		t.Helper()
		p1 := uuid.New()
		p2 := uuid.New()
		sale, err := sales.NewSale(sales.PaymentPix, nil, "")
		require.NoError(t, err)
		require.NoError(t, sale.AddItem(p1, "Whey Protein", 2, valueobject.NewMoneyBRLFromFloat(89.90)))
		require.NoError(t, sale.AddItem(p2, "Creatina", 1, valueobject.NewMoneyBRLFromFloat(69.90)))
		return sale, p1, p2
	}

	t.Run("restores stock and removes sale, items and ledger entry", func(t *testing.T) {
		f := newCheckoutFixture()
		sale, p1, p2 := committedSale(t)

		f.saleRepo.On("FindByID", ctx, sale.ID).Return(sale, nil)
		f.products.On("RestoreStock", ctx, p1, 2).Return(nil).Once()
		f.products.On("RestoreStock", ctx, p2, 1).Return(nil).Once()
		f.ledger.On("DeleteBySale", ctx, sale.ID).Return(nil)
		f.saleRepo.On("DeleteItemsBySale", ctx, sale.ID).Return(nil)
		f.saleRepo.On("Delete", ctx, sale.ID).Return(nil)

		err := f.service.CancelSale(ctx, sale.ID)

		require.NoError(t, err)
		f.products.AssertExpectations(t)
		f.saleRepo.AssertExpectations(t)
		f.ledger.AssertExpectations(t)
	})

	t.Run("cancel of missing sale fails with SALE_NOT_FOUND", func(t *testing.T) {
		f := newCheckoutFixture()
		saleID := uuid.New()

		f.saleRepo.On("FindByID", ctx, saleID).Return(nil, shared.ErrNotFound)

		err := f.service.CancelSale(ctx, saleID)

		assert.ErrorIs(t, err, shared.ErrSaleNotFound)
		f.products.AssertNotCalled(t, "RestoreStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repeated cancel fails like a missing sale", func(t *testing.T) {
		f := newCheckoutFixture()
		sale, p1, p2 := committedSale(t)

		f.saleRepo.On("FindByID", ctx, sale.ID).Return(sale, nil).Once()
		f.products.On("RestoreStock", ctx, p1, 2).Return(nil)
		f.products.On("RestoreStock", ctx, p2, 1).Return(nil)
		f.ledger.On("DeleteBySale", ctx, sale.ID).Return(nil)
		f.saleRepo.On("DeleteItemsBySale", ctx, sale.ID).Return(nil)
		f.saleRepo.On("Delete", ctx, sale.ID).Return(nil)
		require.NoError(t, f.service.CancelSale(ctx, sale.ID))

		f.saleRepo.On("FindByID", ctx, sale.ID).Return(nil, shared.ErrNotFound)
		err := f.service.CancelSale(ctx, sale.ID)

		assert.ErrorIs(t, err, shared.ErrSaleNotFound)
	})
}

func TestCheckoutService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("maps missing sale to SALE_NOT_FOUND", func(t *testing.T) {
		f := newCheckoutFixture()
		saleID := uuid.New()
		f.saleRepo.On("FindByID", ctx, saleID).Return(nil, shared.ErrNotFound)

		_, err := f.service.GetByID(ctx, saleID)

		assert.ErrorIs(t, err, shared.ErrSaleNotFound)
	})
}
