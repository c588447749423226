package jsonfile

import (
	"context"
	"sort"

	"github.com/docfab/docgen/internal/domain/document"
	"github.com/docfab/docgen/internal/repository"
)

// DocumentRepository implements repository.DocumentRepository over a single
// JSON file holding the whole collection.
type DocumentRepository struct {
	path string
}

// NewDocumentRepository creates a repository backed by the given file path.
func NewDocumentRepository(path string) *DocumentRepository {
	return &DocumentRepository{path: path}
}

// Init writes an empty collection if the file doesn't exist yet.
func (r *DocumentRepository) Init() error {
	if _, err := readCollection[document.Document](r.path); err != nil {
		return err
	}
	if exists(r.path) {
		return nil
	}
	return writeCollection[document.Document](r.path, nil)
}

// Insert appends the document and rewrites the collection.
func (r *DocumentRepository) Insert(ctx context.Context, d *document.Document) error {
	docs, err := readCollection[document.Document](r.path)
	if err != nil {
		return err
	}

	d.ID = maxID(docs, func(e document.Document) int64 { return e.ID }) + 1
	docs = append(docs, *d)

	return writeCollection(r.path, docs)
}

// Get retrieves a document by surrogate id.
func (r *DocumentRepository) Get(ctx context.Context, id int64) (*document.Document, error) {
	docs, err := readCollection[document.Document](r.path)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns all documents in insertion order.
func (r *DocumentRepository) List(ctx context.Context) ([]document.Document, error) {
	return readCollection[document.Document](r.path)
}

// ListByClient returns a client's most recent documents, newest first.
func (r *DocumentRepository) ListByClient(ctx context.Context, clientID int64, limit int) ([]document.Document, error) {
	docs, err := readCollection[document.Document](r.path)
	if err != nil {
		return nil, err
	}

	var owned []document.Document
	for _, d := range docs {
		if d.ClientID != nil && *d.ClientID == clientID {
			owned = append(owned, d)
		}
	}

	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	if limit > 0 && len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

// Delete removes a document and rewrites the collection.
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	docs, err := readCollection[document.Document](r.path)
	if err != nil {
		return err
	}

	kept := docs[:0]
	found := false
	for _, d := range docs {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return repository.ErrNotFound
	}

	return writeCollection(r.path, kept)
}
