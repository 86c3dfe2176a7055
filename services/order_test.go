package services

import (
	"context"
	"errors"
	"testing"

	"restaurant-pos/models"

	"go.uber.org/zap"
)

func TestNewOrder(t *testing.T) {
	a, b := NewOrder(), NewOrder()
	if !a.IsEmpty() {
		t.Errorf("NewOrder has %d items, want 0", len(a.Items))
	}
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a.ID, b.ID)
	}
}

func TestAddItemToOrder_PreservesInsertionOrder(t *testing.T) {
	order := NewOrder()
	for _, it := range []models.MenuItem{lemonade, spaghetti, lemonade} {
		if err := AddItemToOrder(&order, it); err != nil {
			t.Fatalf("AddItemToOrder(%q): %v", it.Name, err)
		}
	}
	want := []string{"Lemonade", "Spaghetti", "Lemonade"}
	for i, name := range want {
		if order.Items[i].Name != name {
			t.Errorf("Items[%d] = %q, want %q", i, order.Items[i].Name, name)
		}
	}
}

func TestAddItemToOrder_RejectsMalformedItem(t *testing.T) {
	tests := []struct {
		name string
		item models.MenuItem
	}{
		{"zero value", models.MenuItem{}},
		{"no name", item("", "10", models.CategoryDrink)},
		{"no category", item("Water", "10", "")},
		{"negative price", item("Water", "-0.01", models.CategoryDrink)},
		{"negative tax", models.MenuItem{Name: "Water", Price: dec("1"), Tax: dec("-0.1"), Category: models.CategoryDrink}},
		{"negative tip", models.MenuItem{Name: "Water", Price: dec("1"), Tip: dec("-0.1"), Category: models.CategoryDrink}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := NewOrder()
			_ = AddItemToOrder(&order, cake)

			err := AddItemToOrder(&order, tt.item)
			if !errors.Is(err, ErrInvalidItem) {
				t.Fatalf("AddItemToOrder error = %v, want ErrInvalidItem", err)
			}
			if len(order.Items) != 1 {
				t.Errorf("order has %d items after rejected add, want 1", len(order.Items))
			}
		})
	}
}

func TestOrderFromMenu(t *testing.T) {
	c := OpenCatalog(context.Background(), &memStore{}, zap.NewNop().Sugar())
	ctx := context.Background()
	_ = c.AddItem(ctx, spaghetti)
	_ = c.AddItem(ctx, lemonade)

	order, err := OrderFromMenu(c, "Spaghetti", "Lemonade")
	if err != nil {
		t.Fatalf("OrderFromMenu: %v", err)
	}
	if len(order.Items) != 2 || order.Items[0].Name != "Spaghetti" || order.Items[1].Name != "Lemonade" {
		t.Errorf("OrderFromMenu items = %+v", order.Items)
	}

	if _, err := OrderFromMenu(c, "Spaghetti", "Tiramisu"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("OrderFromMenu with unknown item error = %v, want ErrItemNotFound", err)
	}
}
