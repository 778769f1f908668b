package handler

import (
	"github.com/gin-gonic/gin"

	appfinance "github.com/nutristock/backend/internal/application/finance"
)

// FinanceHandler serves the ledger endpoints
type FinanceHandler struct {
	BaseHandler
	service *appfinance.LedgerService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(service *appfinance.LedgerService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

// Create handles POST /transactions
func (h *FinanceHandler) Create(c *gin.Context) {
	var req appfinance.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entry, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, entry)
}

// Get handles GET /transactions/:id
func (h *FinanceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	entry, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

// List handles GET /transactions. An optional type query parameter narrows
// to income or expense.
func (h *FinanceHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if entryType := c.Query("type"); entryType != "" {
		filter.Filters = map[string]any{"type": entryType}
	}

	entries, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, entries, total, filter.Page, filter.Limit())
}

// SetPaid handles PATCH /transactions/:id/paid
func (h *FinanceHandler) SetPaid(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req struct {
		Paid *bool `json:"paid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.service.SetPaid(c.Request.Context(), id, *req.Paid); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete handles DELETE /transactions/:id. An entry posted by a sale is
// refused with ENTRY_LINKED_TO_SALE.
func (h *FinanceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
