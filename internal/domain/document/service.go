package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/docfab/docgen/internal/domain/client"
	"github.com/docfab/docgen/internal/domain/project"
	"github.com/docfab/docgen/internal/refs"
	repository "github.com/docfab/docgen/internal/repository/errs"
)

// Service is the document registry. Each document type is numbered from the
// counter of the same name; the resulting display number ("RE-2026-003") is
// unique across the lifetime of the data directory.
type Service struct {
	repo     Repository
	clients  ClientDirectory
	projects ProjectDirectory
	alloc    Allocator
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new document service.
func NewService(repo Repository, clients ClientDirectory, projects ProjectDirectory, alloc Allocator, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		clients:  clients,
		projects: projects,
		alloc:    alloc,
		logger:   logger,
		now:      time.Now,
	}
}

// Create registers a new document record and mints its display number.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Document, error) {
	prefix, ok := prefixes[req.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}
	if strings.TrimSpace(req.FilePath) == "" {
		return nil, fmt.Errorf("%w: file path is required", ErrInvalidInput)
	}

	if req.ClientID != nil {
		if _, err := s.clients.Get(ctx, *req.ClientID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, client.ErrClientNotFound
			}
			return nil, fmt.Errorf("checking client %d: %w", *req.ClientID, err)
		}
	}
	if req.ProjectID != nil {
		if _, err := s.projects.Get(ctx, *req.ProjectID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, project.ErrProjectNotFound
			}
			return nil, fmt.Errorf("checking project %d: %w", *req.ProjectID, err)
		}
	}

	seq, err := s.alloc.Next(ctx, req.Type)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	status := req.Status
	if status == "" {
		status = StatusDraft
	}

	d := &Document{
		Type:      req.Type,
		Number:    refs.FormatDocumentNumber(prefix, now.Year(), seq),
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
		FilePath:  req.FilePath,
		Amount:    req.Amount,
		Status:    status,
		CreatedAt: now,
		DueDate:   req.DueDate,
	}

	if err := s.repo.Insert(ctx, d); err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("document created", "id", d.ID, "number", d.Number, "type", d.Type)
	}
	return d, nil
}

// Get fetches a document by internal id.
func (s *Service) Get(ctx context.Context, id int64) (*Document, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return d, nil
}

// List returns all documents.
func (s *Service) List(ctx context.Context) ([]Document, error) {
	return s.repo.List(ctx)
}

// ListByClient returns a client's most recent documents, capped at ten.
func (s *Service) ListByClient(ctx context.Context, clientID int64) ([]Document, error) {
	return s.repo.ListByClient(ctx, clientID, 10)
}

// Delete removes a document unconditionally.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}
