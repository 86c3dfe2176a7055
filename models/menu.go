package models

import "github.com/shopspring/decimal"

// MenuItem is an immutable snapshot of one catalog entry.
type MenuItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Tax      decimal.Decimal `json:"tax"`      // fractional rate, 0.07 = 7%
	Tip      decimal.Decimal `json:"tip"`      // fractional rate
	Category string          `json:"category"` // "Main Course", "Drink", "Dessert", ...
}

// MenuEntry is what the catalog stores under an item name.
type MenuEntry struct {
	Price    decimal.Decimal `json:"price"`
	Tax      decimal.Decimal `json:"tax"`
	Tip      decimal.Decimal `json:"tip"`
	Category string          `json:"category"`
}

const (
	CategoryMainCourse = "Main Course"
	CategoryDrink      = "Drink"
	CategoryDessert    = "Dessert"
)

func (m MenuItem) Entry() MenuEntry {
	return MenuEntry{Price: m.Price, Tax: m.Tax, Tip: m.Tip, Category: m.Category}
}

func (e MenuEntry) Item(name string) MenuItem {
	return MenuItem{Name: name, Price: e.Price, Tax: e.Tax, Tip: e.Tip, Category: e.Category}
}
