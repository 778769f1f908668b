package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutristock/backend/internal/domain/partner"
	"github.com/nutristock/backend/internal/domain/sales"
	"github.com/nutristock/backend/internal/domain/shared"
)

// CustomerService handles customer use cases. It holds the sale repository
// only for the deletion guard: a customer referenced by any sale cannot be
// removed.
type CustomerService struct {
	customers partner.CustomerRepository
	saleRepo  sales.SaleRepository
	logger    *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers partner.CustomerRepository, saleRepo sales.SaleRepository, logger *zap.Logger) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{customers: customers, saleRepo: saleRepo, logger: logger}
}

// Create registers a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("name", customer.Name),
	)

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID returns a single customer
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrCustomerNotFound
		}
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// List returns customers with pagination
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) ([]CustomerResponse, int64, error) {
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
		filter.OrderDir = "asc"
	}
	items, err := s.customers.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customers.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return ToCustomerResponses(items), total, nil
}

// Update applies a partial edit to a customer
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrCustomerNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		if err := customer.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Phone != nil {
		if err := customer.ChangePhone(*req.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer updated", zap.String("customer_id", id.String()))

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer. A customer linked to sale history is kept, so
// recorded sales never point at a vanished customer id.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customers.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrCustomerNotFound
		}
		return err
	}

	hasSales, err := s.saleRepo.ExistsByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if hasSales {
		return shared.ErrCustomerHasSales
	}

	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("customer deleted", zap.String("customer_id", id.String()))
	return nil
}
