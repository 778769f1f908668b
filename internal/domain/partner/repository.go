package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutristock/backend/internal/domain/shared"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}
