package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Tier string

const (
	TierGlass       Tier = "glass"
	TierDoubleGlass Tier = "double_glass"
	TierBottle      Tier = "bottle"
)

// Label is the suffix printed on the order line.
func (t Tier) Label() string {
	switch t {
	case TierGlass:
		return "Verre"
	case TierDoubleGlass:
		return "Double"
	case TierBottle:
		return "Bouteille"
	default:
		return ""
	}
}

func (w WineItem) Price(tier Tier) (decimal.Decimal, bool) {
	switch tier {
	case TierGlass:
		return w.Prices.ByGlass, true
	case TierDoubleGlass:
		return w.Prices.ByDoubleGlass, true
	case TierBottle:
		return w.Prices.ByBottle, true
	default:
		return decimal.Zero, false
	}
}

// ResolveSelection flattens a wine and a tier into a priced order line,
// e.g. "Pic Saint Loup - Héritage (Bouteille)".
func ResolveSelection(wine WineItem, tier Tier) (OrderLine, error) {
	price, ok := wine.Price(tier)
	if !ok {
		return OrderLine{}, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	return OrderLine{
		Name:  fmt.Sprintf("%s (%s)", wine.Name, tier.Label()),
		Price: price,
	}, nil
}
