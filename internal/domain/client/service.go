package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/docfab/docgen/internal/domain/counter"
	"github.com/docfab/docgen/internal/refs"
	repository "github.com/docfab/docgen/internal/repository/errs"
)

// Service is the client registry. It owns global client numbering via the
// sequence allocator and guards deletion against dependent projects.
type Service struct {
	repo     Repository
	projects ProjectCounter
	alloc    Allocator
	logger   *slog.Logger
}

// NewService creates a new client service.
func NewService(repo Repository, projects ProjectCounter, alloc Allocator, logger *slog.Logger) *Service {
	return &Service{repo: repo, projects: projects, alloc: alloc, logger: logger}
}

// Create registers a new client. The display number comes from the "client"
// counter and is never reused, even after the client is deleted.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Client, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	number, err := s.alloc.Next(ctx, counter.NameClient)
	if err != nil {
		return nil, err
	}

	c := &Client{
		Number:      number,
		Name:        req.Name,
		Company:     req.Company,
		Street:      req.Street,
		HouseNumber: req.HouseNumber,
		PostalCode:  req.PostalCode,
		City:        req.City,
		Country:     req.Country,
		Email:       req.Email,
		Phone:       req.Phone,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("client created", "id", c.ID, "number", c.FormattedNumber())
	}
	return c, nil
}

// Get fetches a client by internal id.
func (s *Service) Get(ctx context.Context, id int64) (*Client, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("getting client: %w", err)
	}
	return c, nil
}

// GetByNumber fetches a client by display number.
func (s *Service) GetByNumber(ctx context.Context, number int64) (*Client, error) {
	c, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("getting client by number: %w", err)
	}
	return c, nil
}

// List returns all clients. Backend iteration order is not stable across
// backends, so callers needing display order sort by Number.
func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

// Delete removes a client. It fails with a DependentProjectsError while any
// project still references the client, leaving storage untouched.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	count, err := s.projects.CountByClient(ctx, id)
	if err != nil {
		return fmt.Errorf("checking dependent projects: %w", err)
	}
	if count > 0 {
		return &DependentProjectsError{ClientID: id, Count: count}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("deleting client: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("client deleted", "id", id)
	}
	return nil
}

// Resolve turns a raw user reference ("3", "K-003", "k-3") into a client.
// A bare integer is matched against display numbers first, then against
// internal ids; a "K-"-prefixed reference matches display numbers only.
func (s *Service) Resolve(ctx context.Context, input string) (*Client, error) {
	ref, err := refs.ParseClientRef(input)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetByNumber(ctx, ref.Value)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("resolving client %q: %w", input, err)
	}

	if !ref.NumberOnly {
		c, err = s.repo.Get(ctx, ref.Value)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("resolving client %q: %w", input, err)
		}
	}

	return nil, fmt.Errorf("client %q: %w", input, ErrClientNotFound)
}
