// Package counter mints the monotonic sequence numbers behind every display
// identifier. One counter exists per entity-type name; values never decrease
// and a number, once issued, is never issued again.
package counter

import (
	"context"
	"fmt"
	"log/slog"
)

// Counter names known to the allocator. Client numbering uses "client";
// the remaining names back document numbering per document type.
const (
	NameClient        = "client"
	NameInvoice       = "invoice"
	NameOffer         = "offer"
	NameCredentials   = "credentials"
	NameConcept       = "concept"
	NameDocumentation = "documentation"
)

// KnownNames lists every counter the allocator will serve, in display order.
var KnownNames = []string{
	NameClient,
	NameInvoice,
	NameOffer,
	NameCredentials,
	NameConcept,
	NameDocumentation,
}

// Allocator hands out the next value of a named sequence.
type Allocator struct {
	repo   Repository
	logger *slog.Logger
}

// NewAllocator creates a new Allocator.
func NewAllocator(repo Repository, logger *slog.Logger) *Allocator {
	return &Allocator{repo: repo, logger: logger}
}

// Next allocates and returns the next value of the named counter. The first
// allocation for a name returns 1.
func (a *Allocator) Next(ctx context.Context, name string) (int64, error) {
	if !known(name) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCounter, name)
	}

	value, err := a.repo.Increment(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("allocating %s number: %w", name, err)
	}

	if a.logger != nil {
		a.logger.Debug("allocated sequence number", "counter", name, "value", value)
	}
	return value, nil
}

// Peek returns the current value of the named counter without allocating.
func (a *Allocator) Peek(ctx context.Context, name string) (int64, error) {
	if !known(name) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCounter, name)
	}
	return a.repo.Value(ctx, name)
}

func known(name string) bool {
	for _, n := range KnownNames {
		if n == name {
			return true
		}
	}
	return false
}
