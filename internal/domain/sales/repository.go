package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutristock/backend/internal/domain/shared"
)

// SaleRepository defines persistence operations for the Sale aggregate.
// Items travel with the header: Save persists both, Delete removes both.
type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, sale *Sale) error
	DeleteItemsBySale(ctx context.Context, saleID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByCustomer(ctx context.Context, customerID uuid.UUID) (bool, error)
}
