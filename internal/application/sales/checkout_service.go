package sales

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutristock/backend/internal/domain/catalog"
	"github.com/nutristock/backend/internal/domain/finance"
	"github.com/nutristock/backend/internal/domain/partner"
	"github.com/nutristock/backend/internal/domain/sales"
	"github.com/nutristock/backend/internal/domain/shared"
)

// CheckoutService orchestrates the sale transaction workflow: it validates a
// cart against the catalog, then records the sale, its items, the stock
// decrements and the income ledger entry in one database transaction.
// CancelSale is the exact inverse.
type CheckoutService struct {
	products  catalog.ProductRepository
	saleRepo  sales.SaleRepository
	customers partner.CustomerRepository
	scope     TransactionScope
	logger    *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	products catalog.ProductRepository,
	saleRepo sales.SaleRepository,
	customers partner.CustomerRepository,
	scope TransactionScope,
	logger *zap.Logger,
) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		products:  products,
		saleRepo:  saleRepo,
		customers: customers,
		scope:     scope,
		logger:    logger,
	}
}

// CreateSale runs the checkout workflow.
//
// Validation happens before any write: an empty cart, an unknown product or
// a single short line rejects the whole sale with no side effects. The
// persisted writes then run inside one transaction; the stock decrement is a
// conditional update, so a concurrent sale that drained stock between the
// pre-check and the commit rolls the whole sale back instead of overdrawing.
func (s *CheckoutService) CreateSale(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.ErrEmptyCart
	}

	method := sales.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method: "+req.PaymentMethod)
	}

	// Merge duplicate lines so each product is checked and decremented once.
	quantities := make(map[uuid.UUID]int, len(req.Items))
	order := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		if _, seen := quantities[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	// Stock pre-check across the whole cart. Prices are captured here, from
	// the catalog, never from the caller.
	products := make(map[uuid.UUID]*catalog.Product, len(order))
	for _, productID := range order {
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.ErrProductNotFound
			}
			return nil, err
		}
		if !product.HasStock(quantities[productID]) {
			return nil, shared.NewInsufficientStockError(product.Name, product.Stock, quantities[productID])
		}
		products[productID] = product
	}

	var customerName string
	if req.CustomerID != nil {
		customer, err := s.customers.FindByID(ctx, *req.CustomerID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.ErrCustomerNotFound
			}
			return nil, err
		}
		customerName = customer.Name
	}

	sale, err := sales.NewSale(method, req.CustomerID, customerName)
	if err != nil {
		return nil, err
	}
	for _, productID := range order {
		product := products[productID]
		if err := sale.AddItem(product.ID, product.Name, quantities[productID], product.UnitPrice()); err != nil {
			return nil, err
		}
	}

	entry, err := finance.NewSaleIncome(sale.ID, sale.ShortID(), sale.PaymentMethod.String(), sale.TotalMoney())
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Sales().Save(ctx, sale); err != nil {
			return err
		}
		for _, productID := range order {
			if err := repos.Products().DecrementStock(ctx, productID, quantities[productID]); err != nil {
				return err
			}
		}
		return repos.Ledger().Save(ctx, entry)
	})
	if err != nil {
		s.logger.Error("checkout failed, transaction rolled back",
			zap.String("sale_id", sale.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID.String()),
		zap.String("payment_method", sale.PaymentMethod.String()),
		zap.String("total", sale.Total.StringFixed(2)),
		zap.Int("items", sale.ItemCount()),
	)

	response := ToSaleResponse(sale)
	return &response, nil
}

// CancelSale reverses a committed sale: stock is restored per line item, the
// linked ledger entry, the items and the sale header are deleted, all in one
// transaction. A sale already cancelled (deleted) fails with SALE_NOT_FOUND.
func (s *CheckoutService) CancelSale(ctx context.Context, saleID uuid.UUID) error {
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err := repos.Sales().FindByID(ctx, saleID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrSaleNotFound
			}
			return err
		}
		if len(sale.Items) == 0 {
			return shared.ErrSaleNotFound
		}

		for _, item := range sale.Items {
			if err := repos.Products().RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		if err := repos.Ledger().DeleteBySale(ctx, saleID); err != nil {
			return err
		}
		if err := repos.Sales().DeleteItemsBySale(ctx, saleID); err != nil {
			return err
		}
		return repos.Sales().Delete(ctx, saleID)
	})
	if err != nil {
		s.logger.Warn("sale cancellation failed",
			zap.String("sale_id", saleID.String()),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("sale cancelled", zap.String("sale_id", saleID.String()))
	return nil
}

// GetByID returns a sale with its items
func (s *CheckoutService) GetByID(ctx context.Context, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrSaleNotFound
		}
		return nil, err
	}
	response := ToSaleResponse(sale)
	return &response, nil
}

// List returns sales newest first
func (s *CheckoutService) List(ctx context.Context, filter shared.Filter) ([]SaleResponse, int64, error) {
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
		filter.OrderDir = "desc"
	}
	items, err := s.saleRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.saleRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return ToSaleResponses(items), total, nil
}
