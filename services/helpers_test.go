package services

import (
	"context"
	"errors"

	"restaurant-pos/models"

	"github.com/shopspring/decimal"
)

var errStoreDown = errors.New("store down")

// memStore is an in-memory CatalogStore that records how often it was saved.
type memStore struct {
	items   map[string]models.MenuEntry
	loadErr error
	saveErr error
	saves   int
}

func (s *memStore) Load(ctx context.Context) (map[string]models.MenuEntry, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make(map[string]models.MenuEntry, len(s.items))
	for k, v := range s.items {
		out[k] = v
	}
	return out, nil
}

func (s *memStore) Save(ctx context.Context, items map[string]models.MenuEntry) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.items = items
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(name, price, category string) models.MenuItem {
	return models.MenuItem{
		Name:     name,
		Price:    dec(price),
		Tax:      dec("0.07"),
		Tip:      dec("0.1"),
		Category: category,
	}
}

var (
	spaghetti = item("Spaghetti", "50000", models.CategoryMainCourse)
	lemonade  = item("Lemonade", "10000", models.CategoryDrink)
	cake      = item("Chocolate Cake", "20000", models.CategoryDessert)
)
