package services

import (
	"fmt"

	"restaurant-pos/models"

	"github.com/google/uuid"
)

func NewOrder() models.Order {
	return models.Order{ID: uuid.NewString()}
}

// ValidateMenuItem checks that item is a well-formed menu record.
func ValidateMenuItem(item models.MenuItem) error {
	switch {
	case item.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	case item.Category == "":
		return fmt.Errorf("%w: %q has no category", ErrInvalidItem, item.Name)
	case item.Price.IsNegative():
		return fmt.Errorf("%w: %q price must be >= 0", ErrInvalidItem, item.Name)
	case item.Tax.IsNegative():
		return fmt.Errorf("%w: %q tax must be >= 0", ErrInvalidItem, item.Name)
	case item.Tip.IsNegative():
		return fmt.Errorf("%w: %q tip must be >= 0", ErrInvalidItem, item.Name)
	}
	return nil
}

// AddItemToOrder appends item to order. The order is left untouched when the
// item is rejected.
func AddItemToOrder(order *models.Order, item models.MenuItem) error {
	if err := ValidateMenuItem(item); err != nil {
		return err
	}
	order.Items = append(order.Items, item)
	return nil
}

// OrderFromMenu builds a new order from catalog item names, in the given order.
func OrderFromMenu(c *Catalog, names ...string) (models.Order, error) {
	order := NewOrder()
	for _, name := range names {
		item, err := c.GetItem(name)
		if err != nil {
			return models.Order{}, err
		}
		if err := AddItemToOrder(&order, item); err != nil {
			return models.Order{}, err
		}
	}
	return order, nil
}
