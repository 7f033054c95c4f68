package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

const DateLayout = "2006-01-02"

type ProductTally struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

type DailyTally struct {
	Date             string          `json:"date"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalCard        decimal.Decimal `json:"total_card"`
	TotalCash        decimal.Decimal `json:"total_cash"`
	TransactionCount int64           `json:"transaction_count"`
	Products         []ProductTally  `json:"products"`
}
