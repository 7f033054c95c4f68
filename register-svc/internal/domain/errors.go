package domain

import "errors"

var (
	ErrItemNotFound         = errors.New("item not found in catalog")
	ErrUnknownTier          = errors.New("unknown wine tier")
	ErrInvalidPaymentMethod = errors.New("payment method must be card or cash")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrUnknownPolicy        = errors.New("ledger policy must be hard_delete or soft_cancel")
)
