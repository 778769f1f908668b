package main

import (
	"go.uber.org/zap"

	"github.com/nutristock/backend/internal/domain/catalog"
	"github.com/nutristock/backend/internal/domain/finance"
	"github.com/nutristock/backend/internal/domain/partner"
	"github.com/nutristock/backend/internal/domain/sales"
	"github.com/nutristock/backend/internal/infrastructure/config"
	"github.com/nutristock/backend/internal/infrastructure/logger"
	"github.com/nutristock/backend/internal/infrastructure/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	log.Info("Running schema migration", zap.String("database", cfg.Database.DBName))

	err = db.DB.AutoMigrate(
		&catalog.Product{},
		&partner.Customer{},
		&sales.Sale{},
		&sales.SaleItem{},
		&finance.LedgerEntry{},
	)
	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Migration complete")
}
