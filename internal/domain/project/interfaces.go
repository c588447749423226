package project

import (
	"context"

	"github.com/docfab/docgen/internal/domain/client"
)

// Repository provides persistence for projects. Insert assigns both the
// surrogate ID and the per-client Number (max existing number for the owning
// client, plus one) within a single backend mutation.
type Repository interface {
	Insert(ctx context.Context, p *Project) error
	Get(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	ListByClient(ctx context.Context, clientID int64) ([]Project, error)
	CountByClient(ctx context.Context, clientID int64) (int, error)
	Delete(ctx context.Context, id int64) error
}

// ClientDirectory is the slice of the client registry the project registry
// needs: existence checks at creation and number lookups when resolving refs.
type ClientDirectory interface {
	Get(ctx context.Context, id int64) (*client.Client, error)
	GetByNumber(ctx context.Context, number int64) (*client.Client, error)
}
