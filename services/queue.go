package services

import (
	"slices"

	"restaurant-pos/models"
)

// OrderQueue holds pending orders in strict arrival order. It does no
// locking of its own.
type OrderQueue struct {
	orders []models.Order
}

func NewOrderQueue() *OrderQueue {
	return &OrderQueue{}
}

// Enqueue appends a copy of order to the tail.
func (q *OrderQueue) Enqueue(order models.Order) error {
	if order.IsEmpty() {
		return ErrEmptyOrder
	}
	order.Items = slices.Clone(order.Items)
	q.orders = append(q.orders, order)
	return nil
}

// Dequeue removes and returns the longest-waiting order. ok is false when
// there is nothing to process.
func (q *OrderQueue) Dequeue() (order models.Order, ok bool) {
	if len(q.orders) == 0 {
		return models.Order{}, false
	}
	order = q.orders[0]
	q.orders[0] = models.Order{}
	q.orders = q.orders[1:]
	return order, true
}

func (q *OrderQueue) IsEmpty() bool {
	return len(q.orders) == 0
}

func (q *OrderQueue) Len() int {
	return len(q.orders)
}
