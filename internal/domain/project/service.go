package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/docfab/docgen/internal/domain/client"
	"github.com/docfab/docgen/internal/refs"
	repository "github.com/docfab/docgen/internal/repository/errs"
)

// Service is the project registry. Project numbering is per-client and
// derived from existing data, deliberately not drawn from the global sequence
// allocator: every client's first project is number 1.
type Service struct {
	repo    Repository
	clients ClientDirectory
	logger  *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, clients ClientDirectory, logger *slog.Logger) *Service {
	return &Service{repo: repo, clients: clients, logger: logger}
}

// Create registers a new project for an existing client. The owning client is
// validated here; the per-client number is assigned by the storage backend
// during insert.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if _, err := s.clients.Get(ctx, req.ClientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, client.ErrClientNotFound
		}
		return nil, fmt.Errorf("checking client %d: %w", req.ClientID, err)
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	p := &Project{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, client.ErrClientNotFound
		}
		return nil, fmt.Errorf("creating project: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("project created", "id", p.ID, "client_id", p.ClientID, "number", p.Number)
	}
	return p, nil
}

// Get fetches a project by internal id.
func (s *Service) Get(ctx context.Context, id int64) (*Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return p, nil
}

// List returns all projects across all clients.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

// ListByClient returns the projects owned by one client.
func (s *Service) ListByClient(ctx context.Context, clientID int64) ([]Project, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// Delete removes a project unconditionally; deletion may leave a gap in the
// client's numbering, which is never refilled.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("project deleted", "id", id)
	}
	return nil
}

// Resolve turns a "P-XXX-YY" reference into a project. The XXX component is
// the owning client's display number, matching how formatted numbers are
// generated.
func (s *Service) Resolve(ctx context.Context, input string) (*Project, error) {
	clientNumber, projectNumber, err := refs.ParseProjectRef(input)
	if err != nil {
		return nil, err
	}

	owner, err := s.clients.GetByNumber(ctx, clientNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("project %q: %w", input, ErrProjectNotFound)
		}
		return nil, fmt.Errorf("resolving project %q: %w", input, err)
	}

	projects, err := s.repo.ListByClient(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("resolving project %q: %w", input, err)
	}
	for i := range projects {
		if projects[i].Number == projectNumber {
			return &projects[i], nil
		}
	}

	return nil, fmt.Errorf("project %q: %w", input, ErrProjectNotFound)
}
