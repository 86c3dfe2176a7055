package services

import (
	"fmt"
	"io"

	"restaurant-pos/models"

	"github.com/shopspring/decimal"
)

// drinkDiscountFactor applies to every Drink in an order that also has a
// Main Course. It is flat: more main courses do not deepen it.
var drinkDiscountFactor = decimal.RequireFromString("0.9")

// LineCharge is the priced form of one order line.
type LineCharge struct {
	Item       models.MenuItem
	Charge     decimal.Decimal
	Discounted bool
}

// Bill is a fully priced order.
type Bill struct {
	OrderID string
	Lines   []LineCharge
	Total   decimal.Decimal
}

// ItemCharge is price plus tax and tip, before any discount.
func ItemCharge(item models.MenuItem) decimal.Decimal {
	return item.Price.
		Add(item.Price.Mul(item.Tax)).
		Add(item.Price.Mul(item.Tip))
}

func PriceOrder(order models.Order) Bill {
	bill := Bill{OrderID: order.ID, Total: decimal.Zero}
	if order.IsEmpty() {
		return bill
	}

	mainCourse := order.HasCategory(models.CategoryMainCourse)
	bill.Lines = make([]LineCharge, 0, len(order.Items))
	for _, item := range order.Items {
		line := LineCharge{Item: item, Charge: ItemCharge(item)}
		if mainCourse && item.Category == models.CategoryDrink {
			line.Charge = line.Charge.Mul(drinkDiscountFactor)
			line.Discounted = true
		}
		bill.Lines = append(bill.Lines, line)
		bill.Total = bill.Total.Add(line.Charge)
	}
	return bill
}

// CalculateTotal sums the order at full precision; rounding happens only in
// FormatAmount.
func CalculateTotal(order models.Order) decimal.Decimal {
	return PriceOrder(order).Total
}

// FormatAmount renders d with two decimals for display.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// PrintInvoice writes each item's list price followed by the order total.
func PrintInvoice(w io.Writer, order models.Order) error {
	if order.IsEmpty() {
		_, err := fmt.Fprintln(w, "Empty order.")
		return err
	}
	for _, item := range order.Items {
		if _, err := fmt.Fprintf(w, "%s - $%s\n", item.Name, FormatAmount(item.Price)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total: $%s\n", FormatAmount(CalculateTotal(order)))
	return err
}
