package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/nutristock/backend/internal/domain/sales"
)

// RegisterValidations installs custom binding validations on gin's validator
// engine. Safe to call more than once.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return sales.PaymentMethod(fl.Field().String()).IsValid()
	})
}
