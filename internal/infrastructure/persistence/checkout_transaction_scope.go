package persistence

import (
	"context"

	"gorm.io/gorm"

	appsales "github.com/nutristock/backend/internal/application/sales"
	"github.com/nutristock/backend/internal/domain/catalog"
	"github.com/nutristock/backend/internal/domain/finance"
	"github.com/nutristock/backend/internal/domain/sales"
)

// GormTransactionScope implements the checkout TransactionScope using GORM
// transactions. Everything the passed function does through the scoped
// repositories commits or rolls back as one unit.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories hands out repositories bound to the
// transaction in flight.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormTransactionalRepositories) Sales() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

func (r *gormTransactionalRepositories) Ledger() finance.LedgerEntryRepository {
	return NewGormLedgerRepository(r.tx)
}

var _ appsales.TransactionScope = (*GormTransactionScope)(nil)
var _ appsales.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
