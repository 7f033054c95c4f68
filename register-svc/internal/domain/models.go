package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CatalogItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type WinePrices struct {
	ByGlass       decimal.Decimal `json:"by_glass"`
	ByDoubleGlass decimal.Decimal `json:"by_double_glass"`
	ByBottle      decimal.Decimal `json:"by_bottle"`
}

type WineItem struct {
	Name   string     `json:"name"`
	Prices WinePrices `json:"prices"`
}

type MenuCategory struct {
	Category string        `json:"category"`
	Items    []CatalogItem `json:"items"`
}

type WineSubcategory struct {
	Name  string     `json:"name"`
	Wines []WineItem `json:"wines"`
}

type WineCategory struct {
	Category      string            `json:"category"`
	Subcategories []WineSubcategory `json:"subcategories"`
}

// Catalog is read-only once loaded.
type Catalog struct {
	Menu  []MenuCategory `json:"menu"`
	Wines WineCategory   `json:"wines"`
}

// FindItem returns the first simple item with the exact name.
func (c Catalog) FindItem(name string) (CatalogItem, bool) {
	for _, category := range c.Menu {
		for _, item := range category.Items {
			if item.Name == name {
				return item, true
			}
		}
	}
	return CatalogItem{}, false
}

// FindWine looks a wine up by name. An empty subcategory matches any.
func (c Catalog) FindWine(name, subcategory string) (WineItem, bool) {
	for _, sub := range c.Wines.Subcategories {
		if subcategory != "" && sub.Name != subcategory {
			continue
		}
		for _, wine := range sub.Wines {
			if wine.Name == name {
				return wine, true
			}
		}
	}
	return WineItem{}, false
}

type OrderLine struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentCash
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if !m.Valid() {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}

type Transaction struct {
	ID            string          `json:"id"`
	Items         []OrderLine     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Timestamp     time.Time       `json:"timestamp"`
	Cancelled     bool            `json:"cancelled"`
}

// Clone returns a copy that shares no line storage with t.
func (t Transaction) Clone() Transaction {
	clone := t
	clone.Items = make([]OrderLine, len(t.Items))
	copy(clone.Items, t.Items)
	return clone
}

type ProductSales struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

type OrderSnapshot struct {
	Lines []OrderLine     `json:"lines"`
	Total decimal.Decimal `json:"total"`
}
