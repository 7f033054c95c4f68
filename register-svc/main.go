package main

import (
	"context"
	"time"
	_ "time/tzdata"

	"autobus-caisse/config"
	httpapi "autobus-caisse/register-svc/internal/api/http"
	"autobus-caisse/register-svc/internal/domain"
	"autobus-caisse/register-svc/internal/service"
	"autobus-caisse/register-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load("8081")
	logger := config.NewLogger(cfg.Env)
	defer logger.Sync()

	policy, err := service.ParseLedgerPolicy(cfg.LedgerPolicy)
	if err != nil {
		logger.Fatal("invalid ledger policy", zap.Error(err))
	}

	catalog := loadCatalog(cfg, logger)

	var publisher service.LedgerPublisher
	if cfg.KafkaEnabled() {
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		logger.Info("publishing ledger events",
			zap.String("broker", cfg.Kafka.Broker),
			zap.String("topic", cfg.Kafka.Topic))
	}

	register := service.NewRegisterService(service.RegisterConfig{
		Catalog:   catalog,
		Policy:    policy,
		Publisher: publisher,
		Receipts:  service.QRReceiptGenerator{Shop: "Autobus Café"},
		Logger:    logger,
	})

	handler := httpapi.NewHandler(register, cfg.Location())
	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler), logger)
}

func loadCatalog(cfg config.Config, logger *zap.Logger) domain.Catalog {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var source service.CatalogSource = storage.NewStaticCatalog()
	if cfg.CatalogSource == "postgres" {
		db := config.MustInitPostgres(cfg.DB, logger)
		defer db.Close()
		repo := storage.NewPostgresCatalog(db)
		if config.ParseBool("CATALOG_ENSURE_SCHEMA", true) {
			if err := repo.EnsureSchema(); err != nil {
				logger.Fatal("failed to ensure catalog schema", zap.Error(err))
			}
			if err := repo.Seed(ctx, storage.DefaultCatalog()); err != nil {
				logger.Fatal("failed to seed catalog", zap.Error(err))
			}
		}
		source = repo
	}

	catalog, err := source.LoadCatalog(ctx)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.String("source", cfg.CatalogSource),
		zap.Int("categories", len(catalog.Menu)),
		zap.Int("wine_subcategories", len(catalog.Wines.Subcategories)))
	return catalog
}
