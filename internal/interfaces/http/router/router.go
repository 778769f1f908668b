package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutristock/backend/internal/infrastructure/config"
	"github.com/nutristock/backend/internal/infrastructure/logger"
	"github.com/nutristock/backend/internal/interfaces/http/handler"
	"github.com/nutristock/backend/internal/interfaces/http/middleware"
)

// Handlers bundles the handlers the router wires up
type Handlers struct {
	Products  *handler.ProductHandler
	Sales     *handler.SaleHandler
	Customers *handler.CustomerHandler
	Finance   *handler.FinanceHandler
	Reports   *handler.ReportHandler
}

// Setup builds the gin engine with middleware and all API routes under /api/v1
func Setup(cfg *config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := middleware.RegisterValidations(); err != nil {
		log.Warn("Failed to register custom validations", zap.Error(err))
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowMethods: cfg.HTTP.CORSAllowMethods,
			AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		}),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	products := api.Group("/products")
	{
		products.POST("", h.Products.Create)
		products.GET("", h.Products.List)
		products.GET("/low-stock", h.Products.ListLowStock)
		products.GET("/:id", h.Products.Get)
		products.PATCH("/:id", h.Products.Update)
		products.DELETE("/:id", h.Products.Delete)
	}

	sales := api.Group("/sales")
	{
		sales.POST("", h.Sales.Create)
		sales.GET("", h.Sales.List)
		sales.GET("/:id", h.Sales.Get)
		sales.DELETE("/:id", h.Sales.Cancel)
	}

	customers := api.Group("/customers")
	{
		customers.POST("", h.Customers.Create)
		customers.GET("", h.Customers.List)
		customers.GET("/:id", h.Customers.Get)
		customers.PATCH("/:id", h.Customers.Update)
		customers.DELETE("/:id", h.Customers.Delete)
	}

	transactions := api.Group("/transactions")
	{
		transactions.POST("", h.Finance.Create)
		transactions.GET("", h.Finance.List)
		transactions.GET("/:id", h.Finance.Get)
		transactions.PATCH("/:id/paid", h.Finance.SetPaid)
		transactions.DELETE("/:id", h.Finance.Delete)
	}

	api.GET("/dashboard/stats", h.Reports.Stats)
	reports := api.Group("/reports")
	{
		reports.GET("/monthly", h.Reports.MonthlySummary)
		reports.GET("/sales-by-category", h.Reports.SalesByCategory)
	}

	return engine
}
