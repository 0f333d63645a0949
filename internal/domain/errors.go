package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput indicates a malformed or missing request field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStockExceeded indicates a cart quantity over the product's available stock.
	ErrStockExceeded = errors.New("stock exceeded")
	// ErrEmptyCart indicates a checkout attempt against a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidState indicates a checkout operation issued from the wrong draft state.
	ErrInvalidState = errors.New("invalid checkout state")
	// ErrPaymentFailed indicates the payment capture step failed.
	ErrPaymentFailed = errors.New("payment failed")
	// ErrInvalidTransition indicates an illegal order status change.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrAddressLimit indicates the per-user address book is full.
	ErrAddressLimit = errors.New("address limit reached")
)
