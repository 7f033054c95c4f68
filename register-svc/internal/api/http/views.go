package httpapi

import (
	"time"

	"autobus-caisse/register-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type lineView struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display"`
}

type orderView struct {
	Lines        []lineView      `json:"lines"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
}

type transactionView struct {
	ID            string               `json:"id"`
	Items         []lineView           `json:"items"`
	Total         decimal.Decimal      `json:"total"`
	TotalDisplay  string               `json:"total_display"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	Timestamp     time.Time            `json:"timestamp"`
	TimeDisplay   string               `json:"time_display"`
	Cancelled     bool                 `json:"cancelled"`
}

type productView struct {
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
}

type statsView struct {
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalRevenueDisplay string          `json:"total_revenue_display"`
	TotalCard           decimal.Decimal `json:"total_card"`
	TotalCardDisplay    string          `json:"total_card_display"`
	TotalCash           decimal.Decimal `json:"total_cash"`
	TotalCashDisplay    string          `json:"total_cash_display"`
	TransactionCount    int             `json:"transaction_count"`
	SalesByProduct      []productView   `json:"sales_by_product"`
}

func newLineViews(lines []domain.OrderLine) []lineView {
	views := make([]lineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, lineView{
			Name:         line.Name,
			Price:        line.Price,
			PriceDisplay: domain.FormatPrice(line.Price),
		})
	}
	return views
}

func newOrderView(order domain.OrderSnapshot) orderView {
	return orderView{
		Lines:        newLineViews(order.Lines),
		Total:        order.Total,
		TotalDisplay: domain.FormatPrice(order.Total),
	}
}

func (h *Handler) newTransactionView(tx domain.Transaction) transactionView {
	return transactionView{
		ID:            tx.ID,
		Items:         newLineViews(tx.Items),
		Total:         tx.Total,
		TotalDisplay:  domain.FormatPrice(tx.Total),
		PaymentMethod: tx.PaymentMethod,
		Timestamp:     tx.Timestamp,
		TimeDisplay:   domain.FormatClock(tx.Timestamp, h.Location),
		Cancelled:     tx.Cancelled,
	}
}

func newStatsView(stats domain.Statistics) statsView {
	view := statsView{
		TotalRevenue:        stats.TotalRevenue,
		TotalRevenueDisplay: domain.FormatPrice(stats.TotalRevenue),
		TotalCard:           stats.TotalCard,
		TotalCardDisplay:    domain.FormatPrice(stats.TotalCard),
		TotalCash:           stats.TotalCash,
		TotalCashDisplay:    domain.FormatPrice(stats.TotalCash),
		TransactionCount:    stats.TransactionCount,
		SalesByProduct:      []productView{},
	}
	if stats.SalesByProduct == nil {
		return view
	}
	for _, product := range stats.SalesByProduct.Sorted() {
		view.SalesByProduct = append(view.SalesByProduct, productView{
			Name:         product.Name,
			Quantity:     product.Quantity,
			Total:        product.Total,
			TotalDisplay: domain.FormatPrice(product.Total),
		})
	}
	return view
}
