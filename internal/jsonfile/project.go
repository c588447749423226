package jsonfile

import (
	"context"

	"github.com/docfab/docgen/internal/domain/project"
	"github.com/docfab/docgen/internal/repository"
)

// ProjectRepository implements repository.ProjectRepository over a single
// JSON file holding the whole collection.
type ProjectRepository struct {
	path string
}

// NewProjectRepository creates a repository backed by the given file path.
func NewProjectRepository(path string) *ProjectRepository {
	return &ProjectRepository{path: path}
}

// Init writes an empty collection if the file doesn't exist yet.
func (r *ProjectRepository) Init() error {
	if _, err := readCollection[project.Project](r.path); err != nil {
		return err
	}
	if exists(r.path) {
		return nil
	}
	return writeCollection[project.Project](r.path, nil)
}

// Insert appends the project and rewrites the collection, assigning the
// surrogate id (max+1 over current records) and the per-client number (max
// over the owning client's numbers, plus one) in the same read-modify-write.
func (r *ProjectRepository) Insert(ctx context.Context, p *project.Project) error {
	projects, err := readCollection[project.Project](r.path)
	if err != nil {
		return err
	}

	p.ID = maxID(projects, func(e project.Project) int64 { return e.ID }) + 1

	var number int64
	for _, e := range projects {
		if e.ClientID == p.ClientID && e.Number > number {
			number = e.Number
		}
	}
	p.Number = number + 1

	projects = append(projects, *p)
	return writeCollection(r.path, projects)
}

// Get retrieves a project by surrogate id.
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	projects, err := readCollection[project.Project](r.path)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns all projects in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	return readCollection[project.Project](r.path)
}

// ListByClient returns the projects owned by one client, in insertion order.
func (r *ProjectRepository) ListByClient(ctx context.Context, clientID int64) ([]project.Project, error) {
	projects, err := readCollection[project.Project](r.path)
	if err != nil {
		return nil, err
	}

	var owned []project.Project
	for _, p := range projects {
		if p.ClientID == clientID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

// CountByClient returns how many projects reference the client.
func (r *ProjectRepository) CountByClient(ctx context.Context, clientID int64) (int, error) {
	projects, err := readCollection[project.Project](r.path)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, p := range projects {
		if p.ClientID == clientID {
			count++
		}
	}
	return count, nil
}

// Delete removes a project and rewrites the collection.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	projects, err := readCollection[project.Project](r.path)
	if err != nil {
		return err
	}

	kept := projects[:0]
	found := false
	for _, p := range projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return repository.ErrNotFound
	}

	return writeCollection(r.path, kept)
}
