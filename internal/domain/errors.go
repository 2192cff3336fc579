package domain

import "errors"

// Error taxonomy for the transaction engine. Every error is scoped to the
// order or operation in progress; none is fatal to the process.
var (
	// ErrValidation covers missing or blank required input, e.g. an empty
	// phone number on a delivery order.
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientPayment means the tendered amount does not cover the
	// order total. The order stays Pending.
	ErrInsufficientPayment = errors.New("amount tendered is less than order total")

	// ErrEmptyOrder means payment or commit was attempted with no line items.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrInvalidState means an operation was attempted on an order outside
	// the state it requires, e.g. mutating a Completed order.
	ErrInvalidState = errors.New("operation not allowed in current order state")

	// ErrNotFound is returned by id lookups when the record does not exist
	// or is soft-deleted.
	ErrNotFound = errors.New("record not found")

	// ErrPersistence wraps failures at the storage boundary. A failed commit
	// rolls the in-memory order back to Pending so the operator can retry.
	ErrPersistence = errors.New("persistence failure")
)
