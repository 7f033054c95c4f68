package service

import (
	"context"

	"autobus-caisse/tally-svc/internal/domain"
	"autobus-caisse/tally-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	Apply(ctx context.Context, tx domain.Transaction) (bool, error)
	Reverse(ctx context.Context, tx domain.Transaction) (bool, error)
	Tally(ctx context.Context, date string) (domain.DailyTally, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, event domain.LedgerEvent)
}

type TallyInterface interface {
	Today(ctx context.Context) (domain.DailyTally, error)
	ForDate(ctx context.Context, date string) (domain.DailyTally, error)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ TallyInterface    = (*TallyService)(nil)
)
