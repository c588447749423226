package document

import (
	"context"

	"github.com/docfab/docgen/internal/domain/client"
	"github.com/docfab/docgen/internal/domain/project"
)

// Repository provides persistence for documents. Insert assigns the surrogate
// ID; the display Number is minted by the service before insert.
type Repository interface {
	Insert(ctx context.Context, d *Document) error
	Get(ctx context.Context, id int64) (*Document, error)
	List(ctx context.Context) ([]Document, error)
	ListByClient(ctx context.Context, clientID int64, limit int) ([]Document, error)
	Delete(ctx context.Context, id int64) error
}

// ClientDirectory validates client references at creation.
type ClientDirectory interface {
	Get(ctx context.Context, id int64) (*client.Client, error)
}

// ProjectDirectory validates project references at creation.
type ProjectDirectory interface {
	Get(ctx context.Context, id int64) (*project.Project, error)
}

// Allocator mints display numbers from a named sequence.
type Allocator interface {
	Next(ctx context.Context, name string) (int64, error)
}
