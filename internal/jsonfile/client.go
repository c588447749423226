package jsonfile

import (
	"context"

	"github.com/docfab/docgen/internal/domain/client"
	"github.com/docfab/docgen/internal/repository"
)

// ClientRepository implements repository.ClientRepository over a single JSON
// file holding the whole collection.
type ClientRepository struct {
	path string
}

// NewClientRepository creates a repository backed by the given file path.
func NewClientRepository(path string) *ClientRepository {
	return &ClientRepository{path: path}
}

// Init writes an empty collection if the file doesn't exist yet.
func (r *ClientRepository) Init() error {
	if _, err := readCollection[client.Client](r.path); err != nil {
		return err
	}
	if exists(r.path) {
		return nil
	}
	return writeCollection[client.Client](r.path, nil)
}

// Insert appends the client and rewrites the collection. The surrogate id is
// max(existing ids)+1 over the records present right now.
func (r *ClientRepository) Insert(ctx context.Context, c *client.Client) error {
	clients, err := readCollection[client.Client](r.path)
	if err != nil {
		return err
	}

	c.ID = maxID(clients, func(e client.Client) int64 { return e.ID }) + 1
	clients = append(clients, *c)

	return writeCollection(r.path, clients)
}

// Get retrieves a client by surrogate id.
func (r *ClientRepository) Get(ctx context.Context, id int64) (*client.Client, error) {
	clients, err := readCollection[client.Client](r.path)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByNumber retrieves a client by display number.
func (r *ClientRepository) GetByNumber(ctx context.Context, number int64) (*client.Client, error) {
	clients, err := readCollection[client.Client](r.path)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].Number == number {
			return &clients[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns all clients in insertion order.
func (r *ClientRepository) List(ctx context.Context) ([]client.Client, error) {
	return readCollection[client.Client](r.path)
}

// Delete removes a client and rewrites the collection.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	clients, err := readCollection[client.Client](r.path)
	if err != nil {
		return err
	}

	kept := clients[:0]
	found := false
	for _, c := range clients {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return repository.ErrNotFound
	}

	return writeCollection(r.path, kept)
}
