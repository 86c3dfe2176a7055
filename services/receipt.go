package services

import (
	"fmt"
	"strings"
)

// BuildReceipt returns the customer-facing receipt text for a settled bill.
// Discounted lines are marked so the customer can see where the drink
// discount went.
func BuildReceipt(bill Bill, s Settlement) string {
	var b strings.Builder
	if bill.OrderID != "" {
		fmt.Fprintf(&b, "Order %s\n\n", bill.OrderID)
	}
	for _, line := range bill.Lines {
		fmt.Fprintf(&b, "%s - $%s", line.Item.Name, FormatAmount(line.Charge))
		if line.Discounted {
			b.WriteString(" (-10%)")
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nTotal: $%s\n", FormatAmount(s.Total))
	fmt.Fprintf(&b, "Paid by: %s", s.Method)
	if s.Method == MethodCash {
		fmt.Fprintf(&b, "\nChange: $%s", FormatAmount(s.Change))
	}
	return b.String()
}
