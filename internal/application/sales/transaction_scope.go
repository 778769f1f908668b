package sales

import (
	"context"

	"github.com/nutristock/backend/internal/domain/catalog"
	"github.com/nutristock/backend/internal/domain/finance"
	"github.com/nutristock/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the repositories the
// checkout workflow touches. A function executed within a scope sees all
// repository operations as one database transaction: the sale header, its
// items, the stock decrements and the ledger entry commit or roll back
// together.
type TransactionScope interface {
	// Execute runs fn inside a database transaction. If fn returns an
	// error the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories scoped to the current
// transaction.
type TransactionalRepositories interface {
	Products() catalog.ProductRepository
	Sales() sales.SaleRepository
	Ledger() finance.LedgerEntryRepository
}

// NoOpTransactionScope runs the function without a real transaction. Used in
// tests and anywhere transactional guarantees are provided externally.
type NoOpTransactionScope struct {
	products catalog.ProductRepository
	sales    sales.SaleRepository
	ledger   finance.LedgerEntryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(
	products catalog.ProductRepository,
	saleRepo sales.SaleRepository,
	ledger finance.LedgerEntryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		products: products,
		sales:    saleRepo,
		ledger:   ledger,
	}
}

// Execute runs the function directly against the wrapped repositories.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Products returns the product repository.
func (s *NoOpTransactionScope) Products() catalog.ProductRepository {
	return s.products
}

// Sales returns the sale repository.
func (s *NoOpTransactionScope) Sales() sales.SaleRepository {
	return s.sales
}

// Ledger returns the ledger entry repository.
func (s *NoOpTransactionScope) Ledger() finance.LedgerEntryRepository {
	return s.ledger
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
