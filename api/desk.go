package api

import (
	"context"

	"restaurant-pos/models"
	"restaurant-pos/services"
)

// MenuItems, PendingOrders and ProcessNext give non-HTTP front ends (the
// staff bot) the same serialized access the handlers use.

func (app *Application) MenuItems() []models.MenuItem {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.catalog.Items()
}

func (app *Application) PendingOrders() int {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.register.Queue().Len()
}

// ProcessNext processes the head order and keeps its bill until it is paid.
// A dequeued order stays payable even when err reports a failed invoice print.
func (app *Application) ProcessNext(ctx context.Context) (services.Bill, bool, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	bill, ok, err := app.register.ProcessNextOrder(ctx)
	if !ok {
		return services.Bill{}, false, err
	}
	app.unpaid[bill.OrderID] = bill
	return bill, true, err
}
