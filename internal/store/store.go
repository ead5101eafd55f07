// Package store defines the persistence slot the expense collection lives
// in, plus the file and in-memory backends.
package store

import (
	"context"

	"expensetracker/internal/core"
)

// Slot is a single named location holding the full serialized collection.
// Every write replaces the whole collection; there are no partial updates.
type Slot interface {
	// LoadAll returns the persisted collection in stored order. A missing
	// slot is an empty collection, not an error.
	LoadAll(ctx context.Context) ([]core.Expense, error)

	// SaveAll replaces the slot's contents with records, preserving order.
	SaveAll(ctx context.Context, records []core.Expense) error

	Close() error
}
