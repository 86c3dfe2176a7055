package services

import "errors"

var (
	ErrDuplicateItem = errors.New("item already exists in the menu")
	ErrItemNotFound  = errors.New("item is not on the menu")
	ErrInvalidItem   = errors.New("invalid menu item")
	ErrEmptyOrder    = errors.New("cannot queue an empty order")

	ErrInsufficientFunds        = errors.New("cash received does not cover the bill")
	ErrInvalidCardData          = errors.New("invalid card data")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")

	// Catalog storage failures. Store implementations wrap one of these
	// around the underlying cause.
	ErrStorageIO    = errors.New("catalog storage i/o")
	ErrStorageParse = errors.New("catalog storage parse")
)
