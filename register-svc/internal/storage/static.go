package storage

import (
	"context"

	"autobus-caisse/register-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// StaticCatalog serves the café's built-in menu.
type StaticCatalog struct{}

func NewStaticCatalog() StaticCatalog {
	return StaticCatalog{}
}

func (StaticCatalog) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	return DefaultCatalog(), nil
}

func DefaultCatalog() domain.Catalog {
	return domain.Catalog{
		Menu: []domain.MenuCategory{
			{
				Category: "Apéritifs",
				Items: []domain.CatalogItem{
					item("Ricard", "4.00"),
				},
			},
			{
				Category: "Cocktails",
				Items: []domain.CatalogItem{
					item("Cocktail", "8.00"),
					item("St Germain Spritz", "10.00"),
				},
			},
			{
				Category: "Bières",
				Items: []domain.CatalogItem{
					item("Demi", "3.50"),
					item("Demi St Omer", "4.00"),
					item("Pinte", "6.00"),
					item("Pinte St Omer", "8.00"),
				},
			},
		},
		Wines: domain.WineCategory{
			Category: "Vins",
			Subcategories: []domain.WineSubcategory{
				{
					Name: "Bulles",
					Wines: []domain.WineItem{
						wine("Prosecco DOC - Riccadonna", "7", "12", "26"),
						wine("Champagne brut - Maxime Taillefert", "11", "19", "54"),
					},
				},
				{
					Name: "Blancs",
					Wines: []domain.WineItem{
						wine("Menetou Salon - Domaine Chavet", "7", "13", "31"),
						wine("Saint-Véran - Domaine du Paradis", "7", "13", "30"),
						wine("Viognier - Paul Mas Estate", "6", "10", "22"),
						wine("IGP Côtes de Gascogne - Plaimont", "6", "10", "22"),
						wine("Bordeaux AOP - Altitude", "6", "10", "22"),
					},
				},
				{
					Name: "Rouges",
					Wines: []domain.WineItem{
						wine("Côteaux bourguignons - Bouchard Aîné", "6", "11", "24"),
						wine("Chateauneuf-du-Pape - Clos de l'Oratoire", "14", "25", "78"),
						wine("Saint-Julien - Château Moulin de la Bridane", "9", "16", "45"),
						wine("Pic Saint Loup - Héritage", "6", "11", "24"),
						wine("Bordeaux AOP - Altitude", "6", "10", "22"),
					},
				},
				{
					Name: "Rosés",
					Wines: []domain.WineItem{
						wine("Côtes de Provence - Estandon Héritage", "6", "11", "24"),
						wine("Gris Blanc - Gérard Bertrand", "6", "11", "24"),
						wine("Bordeaux rosé - Altitude", "6", "10", "22"),
					},
				},
			},
		},
	}
}

func item(name, price string) domain.CatalogItem {
	return domain.CatalogItem{Name: name, Price: decimal.RequireFromString(price)}
}

func wine(name, glass, double, bottle string) domain.WineItem {
	return domain.WineItem{
		Name: name,
		Prices: domain.WinePrices{
			ByGlass:       decimal.RequireFromString(glass),
			ByDoubleGlass: decimal.RequireFromString(double),
			ByBottle:      decimal.RequireFromString(bottle),
		},
	}
}
