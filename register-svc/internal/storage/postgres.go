package storage

import (
	"context"
	"database/sql"
	"fmt"

	"autobus-caisse/register-svc/internal/domain"
)

type PostgresCatalog struct {
	DB *sql.DB
}

func NewPostgresCatalog(db *sql.DB) *PostgresCatalog {
	return &PostgresCatalog{DB: db}
}

// LoadCatalog reads the whole menu. Categories and subcategories keep the
// order of their first row by position.
func (r *PostgresCatalog) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	var catalog domain.Catalog

	menu, err := r.loadMenu(ctx)
	if err != nil {
		return catalog, fmt.Errorf("load menu items: %w", err)
	}
	catalog.Menu = menu

	wines, err := r.loadWines(ctx)
	if err != nil {
		return catalog, fmt.Errorf("load wines: %w", err)
	}
	catalog.Wines = wines

	return catalog, nil
}

func (r *PostgresCatalog) loadMenu(ctx context.Context) ([]domain.MenuCategory, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT category, name, price
		FROM menu_items
		ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menu []domain.MenuCategory
	index := make(map[string]int)
	for rows.Next() {
		var category string
		var item domain.CatalogItem
		if err := rows.Scan(&category, &item.Name, &item.Price); err != nil {
			return nil, err
		}
		i, ok := index[category]
		if !ok {
			i = len(menu)
			index[category] = i
			menu = append(menu, domain.MenuCategory{Category: category})
		}
		menu[i].Items = append(menu[i].Items, item)
	}
	return menu, rows.Err()
}

func (r *PostgresCatalog) loadWines(ctx context.Context) (domain.WineCategory, error) {
	wines := domain.WineCategory{Category: "Vins"}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT category, subcategory, name, price_glass, price_double, price_bottle
		FROM wines
		ORDER BY position, id`)
	if err != nil {
		return wines, err
	}
	defer rows.Close()

	index := make(map[string]int)
	for rows.Next() {
		var category, subcategory string
		var wine domain.WineItem
		if err := rows.Scan(&category, &subcategory, &wine.Name,
			&wine.Prices.ByGlass, &wine.Prices.ByDoubleGlass, &wine.Prices.ByBottle); err != nil {
			return wines, err
		}
		wines.Category = category
		i, ok := index[subcategory]
		if !ok {
			i = len(wines.Subcategories)
			index[subcategory] = i
			wines.Subcategories = append(wines.Subcategories, domain.WineSubcategory{Name: subcategory})
		}
		wines.Subcategories[i].Wines = append(wines.Subcategories[i].Wines, wine)
	}
	return wines, rows.Err()
}

func (r *PostgresCatalog) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			position INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS wines (
			id SERIAL PRIMARY KEY,
			category TEXT NOT NULL DEFAULT 'Vins',
			subcategory TEXT NOT NULL,
			name TEXT NOT NULL,
			price_glass NUMERIC(10,2) NOT NULL CHECK (price_glass >= 0),
			price_double NUMERIC(10,2) NOT NULL CHECK (price_double >= 0),
			price_bottle NUMERIC(10,2) NOT NULL CHECK (price_bottle >= 0),
			position INT NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

// Seed loads catalog into empty tables. Tables that already hold rows are
// left alone.
func (r *PostgresCatalog) Seed(ctx context.Context, catalog domain.Catalog) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	position := 0
	for _, category := range catalog.Menu {
		for _, item := range category.Items {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO menu_items (category, name, price, position)
				VALUES ($1, $2, $3, $4)
			`, category.Category, item.Name, item.Price, position); err != nil {
				return err
			}
			position++
		}
	}

	position = 0
	for _, sub := range catalog.Wines.Subcategories {
		for _, wine := range sub.Wines {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO wines (category, subcategory, name, price_glass, price_double, price_bottle, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, catalog.Wines.Category, sub.Name, wine.Name,
				wine.Prices.ByGlass, wine.Prices.ByDoubleGlass, wine.Prices.ByBottle, position); err != nil {
				return err
			}
			position++
		}
	}

	return tx.Commit()
}
