package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const CurrencySymbol = "€"

// FormatPrice renders an amount with two decimals and a trailing symbol: "7.50 €".
func FormatPrice(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " " + CurrencySymbol
}

// FormatClock renders hour:minute the way the fr-FR register shows it.
func FormatClock(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("15:04")
}
