// Package repository defines the storage contract shared by both backends.
// The flat-file and the SQLite backend implement identical interfaces; the
// registries never branch on which one is active.
//
// The contracts are deliberately silent about two backend asymmetries:
//   - surrogate id assignment: the SQLite backend never reuses an id after a
//     delete (AUTOINCREMENT), the flat-file backend computes max(id)+1 over
//     the remaining records and so may reuse one. Display numbers are the
//     identifiers with uniqueness-over-time guarantees, ids are not shown to
//     users.
//   - List ordering: insertion order for the flat-file backend, number order
//     for the SQLite backend. Callers needing a stable display order sort
//     explicitly.
package repository

import (
	"context"

	"github.com/docfab/docgen/internal/domain/client"
	"github.com/docfab/docgen/internal/domain/document"
	"github.com/docfab/docgen/internal/domain/project"
)

// ClientRepository manages client persistence. Insert assigns the surrogate
// id and persists the record.
type ClientRepository interface {
	Insert(ctx context.Context, c *client.Client) error
	Get(ctx context.Context, id int64) (*client.Client, error)
	GetByNumber(ctx context.Context, number int64) (*client.Client, error)
	List(ctx context.Context) ([]client.Client, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectRepository manages project persistence. Insert assigns the surrogate
// id and the per-client number in a single mutation.
type ProjectRepository interface {
	Insert(ctx context.Context, p *project.Project) error
	Get(ctx context.Context, id int64) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
	ListByClient(ctx context.Context, clientID int64) ([]project.Project, error)
	CountByClient(ctx context.Context, clientID int64) (int, error)
	Delete(ctx context.Context, id int64) error
}

// DocumentRepository manages document persistence.
type DocumentRepository interface {
	Insert(ctx context.Context, d *document.Document) error
	Get(ctx context.Context, id int64) (*document.Document, error)
	List(ctx context.Context) ([]document.Document, error)
	ListByClient(ctx context.Context, clientID int64, limit int) ([]document.Document, error)
	Delete(ctx context.Context, id int64) error
}

// CounterRepository manages the named monotonic counters behind display
// numbering. Increment persists immediately; values never decrease.
type CounterRepository interface {
	Increment(ctx context.Context, name string) (int64, error)
	Value(ctx context.Context, name string) (int64, error)
}
