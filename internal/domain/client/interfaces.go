package client

import "context"

// Repository provides persistence for clients. Insert assigns the surrogate
// ID (backend-specific semantics) and persists the record; Number must be set
// by the caller before Insert.
type Repository interface {
	Insert(ctx context.Context, c *Client) error
	Get(ctx context.Context, id int64) (*Client, error)
	GetByNumber(ctx context.Context, number int64) (*Client, error)
	List(ctx context.Context) ([]Client, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectCounter reports how many projects reference a client. The registry
// consults it before deletion.
type ProjectCounter interface {
	CountByClient(ctx context.Context, clientID int64) (int, error)
}

// Allocator mints display numbers from a named sequence.
type Allocator interface {
	Next(ctx context.Context, name string) (int64, error)
}
