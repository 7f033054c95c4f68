package service

import (
	"context"

	"autobus-caisse/register-svc/internal/domain"
	"autobus-caisse/register-svc/internal/storage"
)

type CatalogSource interface {
	LoadCatalog(ctx context.Context) (domain.Catalog, error)
}

type LedgerPublisher interface {
	PublishLedgerEvent(ctx context.Context, event domain.LedgerEvent) error
}

type RegisterServiceInterface interface {
	Catalog(query string) domain.Catalog
	CurrentOrder() domain.OrderSnapshot
	AddItem(name string) (domain.OrderLine, error)
	AddWine(name, subcategory string, tier domain.Tier) (domain.OrderLine, error)
	AddLine(line domain.OrderLine)
	RemoveLastItem() bool
	ClearOrder() bool
	Pay(ctx context.Context, method domain.PaymentMethod) (domain.Transaction, bool, error)
	Transactions() []domain.Transaction
	Transaction(id string) (domain.Transaction, error)
	Void(ctx context.Context, id string) bool
	Delete(ctx context.Context, id string) bool
	Cancel(ctx context.Context, id string) bool
	Statistics() domain.Statistics
	Receipt(id string) ([]byte, error)
	Policy() LedgerPolicy
}

var (
	_ RegisterServiceInterface = (*RegisterService)(nil)
	_ CatalogSource            = storage.StaticCatalog{}
	_ CatalogSource            = (*storage.PostgresCatalog)(nil)
	_ LedgerPublisher          = (*storage.KafkaPublisher)(nil)
	_ ReceiptGenerator         = QRReceiptGenerator{}
)
