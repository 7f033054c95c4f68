package service

import (
	"context"
	"encoding/json"
	"time"

	"autobus-caisse/tally-svc/internal/domain"

	"go.uber.org/zap"
)

const defaultRetryDelay = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger *zap.Logger
	// RetryDelay is the pause after a failed read.
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader:     reader,
		Store:      store,
		Logger:     logger,
		RetryDelay: defaultRetryDelay,
	}
}

// Start reads ledger events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("starting tally consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("tally consumer stopped")
				return
			}
			c.Logger.Warn("error reading message", zap.Error(err))
			if !c.wait(ctx) {
				c.Logger.Info("tally consumer stopped")
				return
			}
			continue
		}

		var event domain.LedgerEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.Warn("error unmarshaling ledger event",
				zap.ByteString("key", message.Key),
				zap.Error(err))
			continue
		}

		c.Process(ctx, event)
	}
}

// wait pauses for RetryDelay. It reports false if ctx ends first.
func (c *Consumer) wait(ctx context.Context) bool {
	timer := time.NewTimer(c.RetryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.LedgerEvent) {
	tx := event.Transaction
	logger := c.Logger.With(zap.String("type", event.Type), zap.String("id", tx.ID))

	var (
		changed bool
		err     error
	)
	switch event.Type {
	case domain.EventTransactionRecorded:
		changed, err = c.Store.Apply(ctx, tx)
	case domain.EventTransactionDeleted, domain.EventTransactionCancelled:
		changed, err = c.Store.Reverse(ctx, tx)
	default:
		logger.Debug("ignoring ledger event")
		return
	}

	if err != nil {
		logger.Error("error updating tally", zap.Error(err))
		return
	}
	if !changed {
		logger.Debug("ledger event already reflected in tally")
		return
	}
	logger.Info("tally updated", zap.String("total", tx.Total.StringFixed(2)))
}
