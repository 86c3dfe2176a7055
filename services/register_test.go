package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type fakeNotifier struct {
	receipts []string
	err      error
}

func (n *fakeNotifier) SendReceipt(ctx context.Context, text string) error {
	n.receipts = append(n.receipts, text)
	return n.err
}

func newTestRegister(notifier ReceiptNotifier) (*Register, *bytes.Buffer) {
	var out bytes.Buffer
	return NewRegister(NewOrderQueue(), &out, notifier, zap.NewNop().Sugar()), &out
}

func TestProcessNextOrder_EmptyQueue(t *testing.T) {
	r, out := newTestRegister(nil)

	_, ok, err := r.ProcessNextOrder(context.Background())
	if err != nil {
		t.Fatalf("ProcessNextOrder: %v", err)
	}
	if ok {
		t.Fatal("ProcessNextOrder on empty queue reported an order")
	}
	if got := out.String(); got != "No pending orders.\n" {
		t.Errorf("output = %q, want %q", got, "No pending orders.\n")
	}
}

func TestProcessNextOrder_PrintsInvoiceAndPrices(t *testing.T) {
	r, out := newTestRegister(nil)
	order := orderOf(spaghetti, lemonade)
	if err := r.Queue().Enqueue(order); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	bill, ok, err := r.ProcessNextOrder(context.Background())
	if err != nil || !ok {
		t.Fatalf("ProcessNextOrder = ok %v, err %v", ok, err)
	}
	if bill.OrderID != order.ID {
		t.Errorf("OrderID = %q, want %q", bill.OrderID, order.ID)
	}
	if !bill.Total.Equal(dec("69030")) {
		t.Errorf("Total = %s, want 69030", bill.Total)
	}

	want := "Processing order:\nSpaghetti - $50000.00\nLemonade - $10000.00\nTotal: $69030.00\n"
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
	if !r.Queue().IsEmpty() {
		t.Error("queue not empty after processing the only order")
	}
}

func TestProcessNextOrder_FIFO(t *testing.T) {
	r, _ := newTestRegister(nil)
	first, second := orderOf(spaghetti), orderOf(cake)
	_ = r.Queue().Enqueue(first)
	_ = r.Queue().Enqueue(second)

	for _, want := range []string{first.ID, second.ID} {
		bill, ok, err := r.ProcessNextOrder(context.Background())
		if err != nil || !ok {
			t.Fatalf("ProcessNextOrder = ok %v, err %v", ok, err)
		}
		if bill.OrderID != want {
			t.Errorf("processed %q, want %q", bill.OrderID, want)
		}
	}
}

func TestSettle_SendsReceipt(t *testing.T) {
	n := &fakeNotifier{}
	r, _ := newTestRegister(n)
	bill := PriceOrder(orderOf(spaghetti, lemonade))

	s, err := r.Settle(context.Background(), bill, CashPayment{Total: bill.Total, CashReceived: dec("70000")})
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if !s.Change.Equal(dec("970")) {
		t.Errorf("Change = %s, want 970", s.Change)
	}
	if len(n.receipts) != 1 {
		t.Fatalf("receipts sent = %d, want 1", len(n.receipts))
	}
	if !strings.Contains(n.receipts[0], "Total: $69030.00") {
		t.Errorf("receipt missing total:\n%s", n.receipts[0])
	}
}

func TestSettle_NotifierFailureKeepsSettlement(t *testing.T) {
	n := &fakeNotifier{err: errors.New("telegram down")}
	r, _ := newTestRegister(n)
	bill := PriceOrder(orderOf(cake))

	s, err := r.Settle(context.Background(), bill, CardPayment{Total: bill.Total, CardNumber: "123456789012", CVV: "123"})
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if !s.Approved {
		t.Error("settlement not approved")
	}
}

func TestSettle_RejectedPaymentSendsNothing(t *testing.T) {
	n := &fakeNotifier{}
	r, _ := newTestRegister(n)
	bill := PriceOrder(orderOf(spaghetti))

	s, err := r.Settle(context.Background(), bill, CashPayment{Total: bill.Total, CashReceived: dec("1")})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Settle error = %v, want ErrInsufficientFunds", err)
	}
	if s.Approved {
		t.Error("rejected settlement reported as approved")
	}
	if len(n.receipts) != 0 {
		t.Errorf("receipts sent = %d, want 0", len(n.receipts))
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestProcessNextOrder_PrintFailureKeepsBill(t *testing.T) {
	r := NewRegister(NewOrderQueue(), failingWriter{}, nil, zap.NewNop().Sugar())
	order := orderOf(spaghetti, lemonade)
	if err := r.Queue().Enqueue(order); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	bill, ok, err := r.ProcessNextOrder(context.Background())
	if err == nil {
		t.Fatal("ProcessNextOrder: want the write error")
	}
	if !ok {
		t.Fatal("ok = false for a dequeued order")
	}
	if bill.OrderID != order.ID || !bill.Total.Equal(dec("69030")) {
		t.Errorf("bill = %s / %s, want %s / 69030", bill.OrderID, bill.Total, order.ID)
	}
}

func TestCharge_DoesNotNotify(t *testing.T) {
	n := &fakeNotifier{}
	r, _ := newTestRegister(n)
	bill := PriceOrder(orderOf(cake))

	s, err := r.Charge(context.Background(), bill, CashPayment{Total: bill.Total, CashReceived: bill.Total})
	if err != nil {
		t.Fatalf("Charge: %v", err)
	}
	if len(n.receipts) != 0 {
		t.Fatalf("receipts sent by Charge = %d, want 0", len(n.receipts))
	}
	r.SendReceipt(context.Background(), bill, s)
	if len(n.receipts) != 1 {
		t.Errorf("receipts sent = %d, want 1", len(n.receipts))
	}
}
