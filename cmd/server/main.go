package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	catalogapp "github.com/nutristock/backend/internal/application/catalog"
	financeapp "github.com/nutristock/backend/internal/application/finance"
	partnerapp "github.com/nutristock/backend/internal/application/partner"
	reportapp "github.com/nutristock/backend/internal/application/report"
	salesapp "github.com/nutristock/backend/internal/application/sales"
	"github.com/nutristock/backend/internal/infrastructure/config"
	"github.com/nutristock/backend/internal/infrastructure/logger"
	"github.com/nutristock/backend/internal/infrastructure/persistence"
	"github.com/nutristock/backend/internal/interfaces/http/handler"
	"github.com/nutristock/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting nutristock backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	ledgerRepo := persistence.NewGormLedgerRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Application services
	productService := catalogapp.NewProductService(productRepo, log)
	checkoutService := salesapp.NewCheckoutService(productRepo, saleRepo, customerRepo, txScope, log)
	customerService := partnerapp.NewCustomerService(customerRepo, saleRepo, log)
	ledgerService := financeapp.NewLedgerService(ledgerRepo, log)
	dashboardService := reportapp.NewDashboardService(reportRepo, log)

	engine := router.Setup(cfg, log, router.Handlers{
		Products:  handler.NewProductHandler(productService),
		Sales:     handler.NewSaleHandler(checkoutService),
		Customers: handler.NewCustomerHandler(customerService),
		Finance:   handler.NewFinanceHandler(ledgerService),
		Reports:   handler.NewReportHandler(dashboardService),
	})

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
