package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appreport "github.com/nutristock/backend/internal/application/report"
)

// ReportHandler serves the dashboard and reporting endpoints
type ReportHandler struct {
	BaseHandler
	service *appreport.DashboardService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *appreport.DashboardService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Stats handles GET /dashboard/stats
func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// MonthlySummary handles GET /reports/monthly
func (h *ReportHandler) MonthlySummary(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "6"))

	summary, err := h.service.MonthlySummary(c.Request.Context(), months)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// SalesByCategory handles GET /reports/sales-by-category
func (h *ReportHandler) SalesByCategory(c *gin.Context) {
	result, err := h.service.SalesByCategory(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
