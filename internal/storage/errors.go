package storage

import "errors"

// Sentinel errors surfaced by ledger and trade operations. Handlers map
// these to HTTP statuses with errors.Is.
var (
	// ErrOverSell indicates a sale quantity larger than the scout's
	// remaining stock. Nothing is applied.
	ErrOverSell = errors.New("storage: sale exceeds remaining boxes")

	// ErrInsufficientStock indicates a transfer or trade settlement that
	// would drive a party's remaining below zero. The whole operation is
	// aborted with no partial movement.
	ErrInsufficientStock = errors.New("storage: insufficient remaining boxes")

	// ErrInvariant indicates a direct field write that would make the
	// derived remaining negative. Admin override writes skip this check.
	ErrInvariant = errors.New("storage: write would make remaining negative")

	// ErrNotFound indicates a missing scout, trade, or record.
	ErrNotFound = errors.New("storage: not found")
)
