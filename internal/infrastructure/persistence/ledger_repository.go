package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutristock/backend/internal/domain/finance"
	"github.com/nutristock/backend/internal/domain/shared"
)

// GormLedgerRepository implements finance.LedgerEntryRepository using GORM
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

var ledgerOrderable = map[string]bool{
	"created_at": true,
	"amount":     true,
	"category":   true,
	"due_date":   true,
}

// FindByID finds a ledger entry by its ID
func (r *GormLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.LedgerEntry, error) {
	var entry finance.LedgerEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindAll finds ledger entries matching the filter. A "type" entry in
// Filters narrows to income or expense.
func (r *GormLedgerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.LedgerEntry, error) {
	query := r.db.WithContext(ctx).Model(&finance.LedgerEntry{})
	if entryType, ok := filter.Filters["type"].(string); ok && entryType != "" {
		query = query.Where("type = ?", entryType)
	}

	var entries []finance.LedgerEntry
	query = applyFilter(query, filter, ledgerOrderable, "description", "category")
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the total number of ledger entries
func (r *GormLedgerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&finance.LedgerEntry{}).Count(&count).Error
	return count, err
}

// Save creates or updates a ledger entry
func (r *GormLedgerRepository) Save(ctx context.Context, entry *finance.LedgerEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete removes a ledger entry
func (r *GormLedgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.LedgerEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteBySale removes the entry posted for a sale
func (r *GormLedgerRepository) DeleteBySale(ctx context.Context, saleID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&finance.LedgerEntry{}, "sale_id = ?", saleID).Error
}

// UpdatePaid updates the paid flag of an entry
func (r *GormLedgerRepository) UpdatePaid(ctx context.Context, id uuid.UUID, paid bool) error {
	result := r.db.WithContext(ctx).Model(&finance.LedgerEntry{}).
		Where("id = ?", id).
		Update("paid", paid)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ finance.LedgerEntryRepository = (*GormLedgerRepository)(nil)
