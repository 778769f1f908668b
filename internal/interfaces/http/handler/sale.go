package handler

import (
	"github.com/gin-gonic/gin"

	appsales "github.com/nutristock/backend/internal/application/sales"
)

// SaleHandler serves the sale transaction endpoints
type SaleHandler struct {
	BaseHandler
	service *appsales.CheckoutService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(service *appsales.CheckoutService) *SaleHandler {
	return &SaleHandler{service: service}
}

// Create handles POST /sales
func (h *SaleHandler) Create(c *gin.Context) {
	var req appsales.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.service.CreateSale(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sale)
}

// Get handles GET /sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// List handles GET /sales
func (h *SaleHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.Limit())
}

// Cancel handles DELETE /sales/:id. Cancellation restores stock and removes
// the linked ledger entry along with the sale itself.
func (h *SaleHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.service.CancelSale(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
