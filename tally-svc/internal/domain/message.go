package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventTransactionRecorded  = "transaction_recorded"
	EventTransactionDeleted   = "transaction_deleted"
	EventTransactionCancelled = "transaction_cancelled"
)

type OrderLine struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Transaction struct {
	ID            string          `json:"id"`
	Items         []OrderLine     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Timestamp     time.Time       `json:"timestamp"`
	Cancelled     bool            `json:"cancelled"`
}

// LedgerEvent is the message register-svc publishes on every ledger change.
type LedgerEvent struct {
	Type        string      `json:"type"`
	Transaction Transaction `json:"transaction"`
	Timestamp   time.Time   `json:"timestamp"`
}
