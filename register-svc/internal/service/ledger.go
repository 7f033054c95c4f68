package service

import (
	"fmt"

	"autobus-caisse/register-svc/internal/domain"
)

type LedgerPolicy string

const (
	PolicyHardDelete LedgerPolicy = "hard_delete"
	PolicySoftCancel LedgerPolicy = "soft_cancel"
)

func ParseLedgerPolicy(s string) (LedgerPolicy, error) {
	switch p := LedgerPolicy(s); p {
	case PolicyHardDelete, PolicySoftCancel:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownPolicy, s)
	}
}

// Ledger holds completed transactions, newest first by insertion.
type Ledger struct {
	transactions []domain.Transaction
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Record(tx domain.Transaction) {
	l.transactions = append([]domain.Transaction{tx.Clone()}, l.transactions...)
}

func (l *Ledger) Delete(id string) bool {
	idx := l.indexOf(id)
	if idx < 0 {
		return false
	}
	remaining := make([]domain.Transaction, 0, len(l.transactions)-1)
	remaining = append(remaining, l.transactions[:idx]...)
	remaining = append(remaining, l.transactions[idx+1:]...)
	l.transactions = remaining
	return true
}

// Cancel flags a transaction in place. It reports false for an unknown id
// or one that was already cancelled.
func (l *Ledger) Cancel(id string) bool {
	idx := l.indexOf(id)
	if idx < 0 || l.transactions[idx].Cancelled {
		return false
	}
	l.transactions[idx].Cancelled = true
	return true
}

func (l *Ledger) Get(id string) (domain.Transaction, bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return domain.Transaction{}, false
	}
	return l.transactions[idx].Clone(), true
}

func (l *Ledger) List() []domain.Transaction {
	list := make([]domain.Transaction, len(l.transactions))
	for i, tx := range l.transactions {
		list[i] = tx.Clone()
	}
	return list
}

func (l *Ledger) Len() int {
	return len(l.transactions)
}

func (l *Ledger) indexOf(id string) int {
	for i, tx := range l.transactions {
		if tx.ID == id {
			return i
		}
	}
	return -1
}
