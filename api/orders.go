package api

import (
	"net/http"

	"restaurant-pos/services"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	Items []string `json:"items"`
}

type BillLine struct {
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Charge     decimal.Decimal `json:"charge"`
	Discounted bool            `json:"discounted"`
}

type BillResponse struct {
	OrderID string     `json:"order_id"`
	Lines   []BillLine `json:"lines"`
	Total   string     `json:"total"`
}

func billResponse(b services.Bill) BillResponse {
	resp := BillResponse{
		OrderID: b.OrderID,
		Lines:   make([]BillLine, 0, len(b.Lines)),
		Total:   services.FormatAmount(b.Total),
	}
	for _, l := range b.Lines {
		resp.Lines = append(resp.Lines, BillLine{
			Name:       l.Item.Name,
			Category:   l.Item.Category,
			Price:      l.Item.Price,
			Charge:     l.Charge,
			Discounted: l.Discounted,
		})
	}
	return resp
}

func (app *Application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	order, err := services.OrderFromMenu(app.catalog, req.Items...)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}
	if err := app.register.Queue().Enqueue(order); err != nil {
		app.errorResponse(w, r, err)
		return
	}
	app.log.Infow("order queued", "order_id", order.ID, "items", len(order.Items), "pending", app.register.Queue().Len())

	_ = writeJSON(w, http.StatusCreated, billResponse(services.PriceOrder(order)))
}

func (app *Application) pendingOrdersHandler(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]int{"pending": app.PendingOrders()})
}

func (app *Application) processNextOrderHandler(w http.ResponseWriter, r *http.Request) {
	bill, ok, err := app.ProcessNext(r.Context())
	if !ok {
		if err != nil {
			app.errorResponse(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}
	// the bill is already payable; a failed console print is only logged
	if err != nil {
		app.log.Warnw("order processed with errors", "order_id", bill.OrderID, "error", err)
	}
	_ = writeJSON(w, http.StatusOK, billResponse(bill))
}
