package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutristock/backend/internal/domain/sales"
	"github.com/nutristock/backend/internal/domain/shared"
)

// GormSaleRepository implements sales.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

var saleOrderable = map[string]bool{
	"created_at":     true,
	"total":          true,
	"payment_method": true,
}

// FindByID finds a sale with its items
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll finds sales matching the filter, items included
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Sale, error) {
	var items []sales.Sale
	query := applyFilter(r.db.WithContext(ctx).Model(&sales.Sale{}), filter, saleOrderable,
		"customer_name")
	if err := query.Preload("Items").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the total number of sales
func (r *GormSaleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&sales.Sale{}).Count(&count).Error
	return count, err
}

// Save creates the sale header together with its line items
func (r *GormSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

// DeleteItemsBySale removes all line items of a sale
func (r *GormSaleRepository) DeleteItemsBySale(ctx context.Context, saleID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&sales.SaleItem{}, "sale_id = ?", saleID).Error
}

// Delete removes the sale header
func (r *GormSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&sales.Sale{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByCustomer reports whether any sale references the customer
func (r *GormSaleRepository) ExistsByCustomer(ctx context.Context, customerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&sales.Sale{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	return count > 0, err
}

var _ sales.SaleRepository = (*GormSaleRepository)(nil)
