package counter

import "context"

// Repository provides persistence for named monotonic counters.
type Repository interface {
	// Increment adds 1 to the named counter, creating it at 0 first if
	// absent, persists the result, and returns the new value.
	Increment(ctx context.Context, name string) (int64, error)
	// Value returns the current value without mutating state, 0 for a
	// counter never incremented.
	Value(ctx context.Context, name string) (int64, error)
}
