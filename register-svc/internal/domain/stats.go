package domain

import (
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"
)

// SalesByProduct maps a line name to its quantity and revenue. Names keep
// the order in which they were first seen.
type SalesByProduct struct {
	names   []string
	entries map[string]*ProductSales
}

func NewSalesByProduct() *SalesByProduct {
	return &SalesByProduct{entries: make(map[string]*ProductSales)}
}

func (s *SalesByProduct) Add(line OrderLine) {
	entry, ok := s.entries[line.Name]
	if !ok {
		entry = &ProductSales{Name: line.Name, Total: decimal.Zero}
		s.entries[line.Name] = entry
		s.names = append(s.names, line.Name)
	}
	entry.Quantity++
	entry.Total = entry.Total.Add(line.Price)
}

func (s *SalesByProduct) Get(name string) (ProductSales, bool) {
	entry, ok := s.entries[name]
	if !ok {
		return ProductSales{}, false
	}
	return *entry, true
}

func (s *SalesByProduct) Len() int {
	return len(s.names)
}

// Names lists product names in first-seen order.
func (s *SalesByProduct) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Sorted lists products by descending total; ties keep first-seen order.
func (s *SalesByProduct) Sorted() []ProductSales {
	sorted := make([]ProductSales, 0, len(s.names))
	for _, name := range s.names {
		sorted = append(sorted, *s.entries[name])
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total.GreaterThan(sorted[j].Total)
	})
	return sorted
}

func (s *SalesByProduct) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

type Statistics struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalCard        decimal.Decimal `json:"total_card"`
	TotalCash        decimal.Decimal `json:"total_cash"`
	TransactionCount int             `json:"transaction_count"`
	SalesByProduct   *SalesByProduct `json:"sales_by_product"`
}

func (s Statistics) TotalByMethod(method PaymentMethod) decimal.Decimal {
	switch method {
	case PaymentCard:
		return s.TotalCard
	case PaymentCash:
		return s.TotalCash
	default:
		return decimal.Zero
	}
}
