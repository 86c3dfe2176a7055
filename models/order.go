package models

// Order is a customer's selected sequence of menu items. The same item may
// appear more than once; each occurrence is a separate unit.
type Order struct {
	ID    string
	Items []MenuItem
}

func (o Order) IsEmpty() bool {
	return len(o.Items) == 0
}

// HasCategory reports whether any item in the order belongs to category.
func (o Order) HasCategory(category string) bool {
	for _, it := range o.Items {
		if it.Category == category {
			return true
		}
	}
	return false
}
