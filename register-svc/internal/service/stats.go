package service

import (
	"autobus-caisse/register-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// ComputeStatistics derives every aggregate from a ledger snapshot.
// Cancelled transactions are skipped.
func ComputeStatistics(transactions []domain.Transaction) domain.Statistics {
	stats := domain.Statistics{
		TotalRevenue:   decimal.Zero,
		TotalCard:      decimal.Zero,
		TotalCash:      decimal.Zero,
		SalesByProduct: domain.NewSalesByProduct(),
	}

	for _, tx := range transactions {
		if tx.Cancelled {
			continue
		}
		stats.TransactionCount++
		stats.TotalRevenue = stats.TotalRevenue.Add(tx.Total)
		switch tx.PaymentMethod {
		case domain.PaymentCard:
			stats.TotalCard = stats.TotalCard.Add(tx.Total)
		case domain.PaymentCash:
			stats.TotalCash = stats.TotalCash.Add(tx.Total)
		}
		for _, line := range tx.Items {
			stats.SalesByProduct.Add(line)
		}
	}

	return stats
}

func TotalRevenue(transactions []domain.Transaction) decimal.Decimal {
	return ComputeStatistics(transactions).TotalRevenue
}

func TotalByMethod(transactions []domain.Transaction, method domain.PaymentMethod) decimal.Decimal {
	return ComputeStatistics(transactions).TotalByMethod(method)
}
