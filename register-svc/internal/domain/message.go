package domain

import "time"

const (
	EventTransactionRecorded  = "transaction_recorded"
	EventTransactionDeleted   = "transaction_deleted"
	EventTransactionCancelled = "transaction_cancelled"
)

type LedgerEvent struct {
	Type        string      `json:"type"`
	Transaction Transaction `json:"transaction"`
	Timestamp   time.Time   `json:"timestamp"`
}
