package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutristock/backend/internal/domain/catalog"
	"github.com/nutristock/backend/internal/domain/shared"
)

// ProductService handles catalog use cases
type ProductService struct {
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{products: products, logger: logger}
}

// Create registers a new product in the catalog
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.Category, req.Supplier, req.Price, req.Cost, req.Stock, req.MinStock)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	product.EstimatedConsumptionDays = req.EstimatedConsumptionDays

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID returns a single product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrProductNotFound
		}
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List returns products with pagination
func (s *ProductService) List(ctx context.Context, filter shared.Filter) ([]ProductResponse, int64, error) {
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
		filter.OrderDir = "asc"
	}
	items, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.products.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return ToProductResponses(items), total, nil
}

// ListLowStock returns products at or below their reorder threshold
func (s *ProductService) ListLowStock(ctx context.Context) ([]ProductResponse, error) {
	items, err := s.products.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(items), nil
}

// Update applies a partial edit to a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrProductNotFound
		}
		return nil, err
	}

	upd := catalog.ProductUpdate{
		Name:                     req.Name,
		Category:                 req.Category,
		Supplier:                 req.Supplier,
		Description:              req.Description,
		Price:                    req.Price,
		Cost:                     req.Cost,
		Stock:                    req.Stock,
		MinStock:                 req.MinStock,
		EstimatedConsumptionDays: req.EstimatedConsumptionDays,
	}
	if err := product.Apply(upd); err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product updated", zap.String("product_id", id.String()))

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product from the catalog. Sale history is unaffected
// because sale items carry their own copy of the name and price.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrProductNotFound
		}
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product deleted", zap.String("product_id", id.String()))
	return nil
}
