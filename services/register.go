package services

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ReceiptNotifier delivers receipt text somewhere outside the process.
type ReceiptNotifier interface {
	SendReceipt(ctx context.Context, text string) error
}

// Register drives one processing cycle: dequeue the next order, print its
// invoice, and settle a payment for it.
type Register struct {
	queue    *OrderQueue
	out      io.Writer
	notifier ReceiptNotifier
	log      *zap.SugaredLogger
}

// NewRegister wires a register to queue. notifier may be nil.
func NewRegister(queue *OrderQueue, out io.Writer, notifier ReceiptNotifier, log *zap.SugaredLogger) *Register {
	return &Register{queue: queue, out: out, notifier: notifier, log: log}
}

func (r *Register) Queue() *OrderQueue {
	return r.queue
}

// ProcessNextOrder dequeues the head order, prices it and prints its
// invoice. ok is false when no orders are pending; that is not an error.
// Once an order is dequeued its bill is returned even if printing fails.
func (r *Register) ProcessNextOrder(ctx context.Context) (bill Bill, ok bool, err error) {
	order, ok := r.queue.Dequeue()
	if !ok {
		_, err = fmt.Fprintln(r.out, "No pending orders.")
		return Bill{}, false, err
	}

	bill = PriceOrder(order)
	r.log.Infow("order processed",
		"order_id", order.ID,
		"items", len(order.Items),
		"total", FormatAmount(bill.Total),
		"pending", r.queue.Len(),
	)

	if _, err = fmt.Fprintln(r.out, "Processing order:"); err == nil {
		err = PrintInvoice(r.out, order)
	}
	if err != nil {
		r.log.Warnw("invoice print failed", "order_id", order.ID, "error", err)
		return bill, true, fmt.Errorf("print invoice: %w", err)
	}
	return bill, true, nil
}

// Charge processes p against bill without sending a receipt.
func (r *Register) Charge(ctx context.Context, bill Bill, p Payment) (Settlement, error) {
	s, err := p.Process()
	if err != nil {
		r.log.Warnw("payment rejected", "order_id", bill.OrderID, "method", p.Method(), "error", err)
		return Settlement{}, err
	}
	r.log.Infow("payment settled",
		"order_id", bill.OrderID,
		"method", s.Method,
		"total", FormatAmount(s.Total),
		"change", FormatAmount(s.Change),
	)
	return s, nil
}

// SendReceipt delivers the receipt for a settled bill. Delivery failures are
// logged, never returned: the payment already stands.
func (r *Register) SendReceipt(ctx context.Context, bill Bill, s Settlement) {
	if r.notifier == nil {
		return
	}
	if err := r.notifier.SendReceipt(ctx, BuildReceipt(bill, s)); err != nil {
		r.log.Errorw("receipt delivery failed", "order_id", bill.OrderID, "error", err)
	}
}

// Settle is Charge followed by SendReceipt on success.
func (r *Register) Settle(ctx context.Context, bill Bill, p Payment) (Settlement, error) {
	s, err := r.Charge(ctx, bill, p)
	if err != nil {
		return Settlement{}, err
	}
	r.SendReceipt(ctx, bill, s)
	return s, nil
}
