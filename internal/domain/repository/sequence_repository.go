package repository

import "context"

// SequenceRepository hands out monotonically increasing per-scope counters.
// Next must be called inside TransactionManager.Execute so the increment
// commits or rolls back with the record that consumes it.
type SequenceRepository interface {
	// Next increments the counter for scope and returns the new value,
	// starting at 1.
	Next(ctx context.Context, scope string) (int64, error)

	// Current returns the last issued value, 0 when the scope is unused.
	Current(ctx context.Context, scope string) (int64, error)
}
