package finance

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutristock/backend/internal/domain/finance"
	"github.com/nutristock/backend/internal/domain/shared"
	"github.com/nutristock/backend/internal/domain/shared/valueobject"
)

// LedgerService handles manual ledger entries. Entries posted by the sale
// workflow pass through here read-only; their lifecycle belongs to the sale.
type LedgerService struct {
	entries finance.LedgerEntryRepository
	logger  *zap.Logger
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(entries finance.LedgerEntryRepository, logger *zap.Logger) *LedgerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerService{entries: entries, logger: logger}
}

// Create records a manual income or expense entry
func (s *LedgerService) Create(ctx context.Context, req CreateEntryRequest) (*EntryResponse, error) {
	amount := valueobject.NewMoneyBRL(req.Amount)

	var entry *finance.LedgerEntry
	var err error
	switch finance.EntryType(req.Type) {
	case finance.EntryIncome:
		entry, err = finance.NewIncome(req.Category, req.Description, amount)
	case finance.EntryExpense:
		entry, err = finance.NewExpense(req.Category, req.Description, amount, req.DueDate)
	default:
		return nil, shared.NewDomainError("INVALID_ENTRY_TYPE", "Unknown entry type: "+req.Type)
	}
	if err != nil {
		return nil, err
	}

	if err := s.entries.Save(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("ledger entry recorded",
		zap.String("entry_id", entry.ID.String()),
		zap.String("type", string(entry.Type)),
		zap.String("amount", entry.Amount.StringFixed(2)),
	)

	response := ToEntryResponse(entry)
	return &response, nil
}

// GetByID returns a single ledger entry
func (s *LedgerService) GetByID(ctx context.Context, id uuid.UUID) (*EntryResponse, error) {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToEntryResponse(entry)
	return &response, nil
}

// List returns ledger entries newest first
func (s *LedgerService) List(ctx context.Context, filter shared.Filter) ([]EntryResponse, int64, error) {
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
		filter.OrderDir = "desc"
	}
	items, err := s.entries.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.entries.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return ToEntryResponses(items), total, nil
}

// SetPaid toggles the paid flag on an entry
func (s *LedgerService) SetPaid(ctx context.Context, id uuid.UUID, paid bool) error {
	if _, err := s.entries.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.entries.UpdatePaid(ctx, id, paid); err != nil {
		return err
	}
	s.logger.Info("ledger entry paid flag updated",
		zap.String("entry_id", id.String()),
		zap.Bool("paid", paid),
	)
	return nil
}

// Delete removes a manual entry. An entry posted by a sale is refused; it can
// only disappear by cancelling the sale that created it.
func (s *LedgerService) Delete(ctx context.Context, id uuid.UUID) error {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.IsLinkedToSale() {
		return shared.ErrEntryLinkedToSale
	}
	if err := s.entries.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("ledger entry deleted", zap.String("entry_id", id.String()))
	return nil
}
