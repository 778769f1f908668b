package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutristock/backend/internal/domain/shared"
)

// LedgerEntryRepository defines persistence operations for ledger entries.
type LedgerEntryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LedgerEntry, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]LedgerEntry, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, entry *LedgerEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteBySale removes the entry posted for a sale; used only by the
	// cancellation workflow.
	DeleteBySale(ctx context.Context, saleID uuid.UUID) error
	UpdatePaid(ctx context.Context, id uuid.UUID, paid bool) error
}
