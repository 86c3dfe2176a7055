package api

import (
	"fmt"
	"net/http"

	"restaurant-pos/services"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest settles either a processed order (OrderID) or a bare
// total when no order is given.
type CreatePaymentRequest struct {
	OrderID      string           `json:"order_id,omitempty"`
	Method       string           `json:"method"`
	Total        *decimal.Decimal `json:"total,omitempty"`
	CashReceived decimal.Decimal  `json:"cash_received"`
	CardNumber   string           `json:"card_number"`
	ExpiryDate   string           `json:"expiry_date"`
	CVV          string           `json:"cvv"`
}

type SettlementResponse struct {
	OrderID  string `json:"order_id,omitempty"`
	Method   string `json:"method"`
	Total    string `json:"total"`
	Change   string `json:"change"`
	Approved bool   `json:"approved"`
}

func (app *Application) createPaymentHandler(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	bill, s, err := app.charge(r, req)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}
	// outside the lock: delivery talks to Telegram
	app.register.SendReceipt(r.Context(), bill, s)

	_ = writeJSON(w, http.StatusOK, SettlementResponse{
		OrderID:  bill.OrderID,
		Method:   s.Method,
		Total:    services.FormatAmount(s.Total),
		Change:   services.FormatAmount(s.Change),
		Approved: s.Approved,
	})
}

// charge resolves the bill for req and settles it under the lock. A settled
// order is removed from the unpaid set.
func (app *Application) charge(r *http.Request, req CreatePaymentRequest) (services.Bill, services.Settlement, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	var bill services.Bill
	switch {
	case req.OrderID != "":
		b, ok := app.unpaid[req.OrderID]
		if !ok {
			return bill, services.Settlement{}, fmt.Errorf("%w: no processed order %q awaiting payment", errUnknownOrder, req.OrderID)
		}
		bill = b
	case req.Total != nil:
		if req.Total.IsNegative() {
			return bill, services.Settlement{}, fmt.Errorf("%w: total must be >= 0", errBadPayment)
		}
		bill = services.Bill{Total: *req.Total}
	default:
		return bill, services.Settlement{}, fmt.Errorf("%w: order_id or total is required", errBadPayment)
	}

	p, err := services.NewPayment(req.Method, bill.Total, services.PaymentDetails{
		CashReceived: req.CashReceived,
		CardNumber:   req.CardNumber,
		ExpiryDate:   req.ExpiryDate,
		CVV:          req.CVV,
	})
	if err != nil {
		return bill, services.Settlement{}, err
	}

	s, err := app.register.Charge(r.Context(), bill, p)
	if err != nil {
		return bill, services.Settlement{}, err
	}
	if bill.OrderID != "" {
		delete(app.unpaid, bill.OrderID)
	}
	return bill, s, nil
}
