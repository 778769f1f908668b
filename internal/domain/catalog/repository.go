package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutristock/backend/internal/domain/shared"
)

// ProductRepository defines persistence operations for the Product aggregate.
//
// DecrementStock and RestoreStock mutate the stock counter directly with a
// single statement instead of a read-modify-write on the aggregate: the
// decrement is conditional on sufficient stock so two concurrent sales cannot
// jointly overdraw a product.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	FindLowStock(ctx context.Context) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts quantity where stock >= quantity.
	// Returns shared.ErrProductNotFound if the product does not exist and
	// shared.ErrInsufficientStock if the guard fails.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
	// RestoreStock atomically adds quantity back to the product's stock.
	RestoreStock(ctx context.Context, id uuid.UUID, quantity int) error
}
