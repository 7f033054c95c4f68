package service

import (
	"strings"

	"autobus-caisse/register-svc/internal/domain"
)

// FilterCatalog projects the catalog onto the entries matching query,
// case-insensitively. Simple items match on their name; wines match on
// their name or their subcategory name. Groups left empty are dropped.
// The input catalog is never modified.
func FilterCatalog(catalog domain.Catalog, query string) domain.Catalog {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return catalog
	}

	filtered := domain.Catalog{
		Wines: domain.WineCategory{Category: catalog.Wines.Category},
	}

	for _, category := range catalog.Menu {
		var items []domain.CatalogItem
		for _, item := range category.Items {
			if contains(item.Name, needle) {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			filtered.Menu = append(filtered.Menu, domain.MenuCategory{
				Category: category.Category,
				Items:    items,
			})
		}
	}

	for _, sub := range catalog.Wines.Subcategories {
		subMatches := contains(sub.Name, needle)
		var wines []domain.WineItem
		for _, wine := range sub.Wines {
			if subMatches || contains(wine.Name, needle) {
				wines = append(wines, wine)
			}
		}
		if len(wines) > 0 {
			filtered.Wines.Subcategories = append(filtered.Wines.Subcategories, domain.WineSubcategory{
				Name:  sub.Name,
				Wines: wines,
			})
		}
	}

	return filtered
}

func contains(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}
