package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")

	ErrEmptyCart         = NewDomainError("EMPTY_CART", "Sale must contain at least one item")
	ErrProductNotFound   = NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	ErrInsufficientStock = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrSaleNotFound      = NewDomainError("SALE_NOT_FOUND", "Sale not found")
	ErrEntryLinkedToSale = NewDomainError("ENTRY_LINKED_TO_SALE", "Transaction is linked to a sale and can only be removed by cancelling the sale")
	ErrCustomerNotFound  = NewDomainError("CUSTOMER_NOT_FOUND", "Customer not found")
	ErrCustomerHasSales  = NewDomainError("CUSTOMER_HAS_SALES", "Customer has recorded sales and cannot be deleted")
)

// NewInsufficientStockError returns an INSUFFICIENT_STOCK error naming the
// product, so the point of sale can tell the operator which line failed.
func NewInsufficientStockError(productName string, available, requested int) *DomainError {
	return NewDomainError(
		ErrInsufficientStock.Code,
		fmt.Sprintf("Insufficient stock for %q: %d available, %d requested", productName, available, requested),
	)
}
