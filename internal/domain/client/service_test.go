package client_test

import (
	"context"
	"testing"

	"github.com/docfab/docgen/internal/domain/client"
	"github.com/docfab/docgen/internal/domain/counter"
	"github.com/docfab/docgen/internal/repository"
	"github.com/docfab/docgen/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(repo *mocks.ClientRepository, projects *mocks.ProjectRepository, counters *mocks.CounterRepository) *client.Service {
	return client.NewService(repo, projects, counter.NewAllocator(counters, nil), nil)
}

func TestClientService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ClientRepository{}
	counters := &mocks.CounterRepository{}
	counters.On("Increment", ctx, "client").Return(int64(1), nil)
	repo.On("Insert", ctx, mock.Anything).Return(nil)

	svc := newService(repo, &mocks.ProjectRepository{}, counters)

	c, err := svc.Create(ctx, client.CreateRequest{Name: "Acme"})
	require.NoError(t, err)
	require.Equal(t, int64(1), c.Number)
	require.Equal(t, "K-001", c.FormattedNumber())
	require.False(t, c.CreatedAt.IsZero())

	repo.AssertExpectations(t)
	counters.AssertExpectations(t)
}

func TestClientService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ClientRepository{}
	counters := &mocks.CounterRepository{}
	svc := newService(repo, &mocks.ProjectRepository{}, counters)

	_, err := svc.Create(ctx, client.CreateRequest{Name: "  "})
	require.ErrorIs(t, err, client.ErrInvalidInput)

	// No number may be allocated for rejected input
	counters.AssertNotCalled(t, "Increment")
	repo.AssertNotCalled(t, "Insert")
}

func TestClientService_DeleteBlockedByProjects(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ClientRepository{}
	projects := &mocks.ProjectRepository{}
	repo.On("Get", ctx, int64(1)).Return(&client.Client{ID: 1, Number: 1, Name: "Acme"}, nil)
	projects.On("CountByClient", ctx, int64(1)).Return(2, nil)

	svc := newService(repo, projects, &mocks.CounterRepository{})

	err := svc.Delete(ctx, 1)

	var depErr *client.DependentProjectsError
	require.ErrorAs(t, err, &depErr)
	require.Equal(t, 2, depErr.Count)
	repo.AssertNotCalled(t, "Delete")
}

func TestClientService_DeleteWithoutProjects(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ClientRepository{}
	projects := &mocks.ProjectRepository{}
	repo.On("Get", ctx, int64(1)).Return(&client.Client{ID: 1, Number: 1, Name: "Acme"}, nil)
	projects.On("CountByClient", ctx, int64(1)).Return(0, nil)
	repo.On("Delete", ctx, int64(1)).Return(nil)

	svc := newService(repo, projects, &mocks.CounterRepository{})

	require.NoError(t, svc.Delete(ctx, 1))
	repo.AssertExpectations(t)
}

func TestClientService_DeleteNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ClientRepository{}
	repo.On("Get", ctx, int64(9)).Return((*client.Client)(nil), repository.ErrNotFound)

	svc := newService(repo, &mocks.ProjectRepository{}, &mocks.CounterRepository{})

	err := svc.Delete(ctx, 9)
	require.ErrorIs(t, err, client.ErrClientNotFound)
}

func TestClientService_ResolveNumberBeforeID(t *testing.T) {
	ctx := context.Background()

	// Client with number 2 and a different client with id 2 both exist; a
	// bare "2" must resolve by display number first.
	byNumber := &client.Client{ID: 7, Number: 2, Name: "By Number"}

	repo := &mocks.ClientRepository{}
	repo.On("GetByNumber", ctx, int64(2)).Return(byNumber, nil)

	svc := newService(repo, &mocks.ProjectRepository{}, &mocks.CounterRepository{})

	c, err := svc.Resolve(ctx, "2")
	require.NoError(t, err)
	require.Equal(t, int64(7), c.ID)
	repo.AssertNotCalled(t, "Get")
}

func TestClientService_ResolveFallsBackToID(t *testing.T) {
	ctx := context.Background()

	byID := &client.Client{ID: 2, Number: 5, Name: "By ID"}

	repo := &mocks.ClientRepository{}
	repo.On("GetByNumber", ctx, int64(2)).Return((*client.Client)(nil), repository.ErrNotFound)
	repo.On("Get", ctx, int64(2)).Return(byID, nil)

	svc := newService(repo, &mocks.ProjectRepository{}, &mocks.CounterRepository{})

	c, err := svc.Resolve(ctx, "2")
	require.NoError(t, err)
	require.Equal(t, int64(2), c.ID)
}

func TestClientService_ResolvePrefixedMatchesNumberOnly(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ClientRepository{}
	repo.On("GetByNumber", ctx, int64(3)).Return((*client.Client)(nil), repository.ErrNotFound)

	svc := newService(repo, &mocks.ProjectRepository{}, &mocks.CounterRepository{})

	// "K-003" never falls back to id matching
	_, err := svc.Resolve(ctx, "K-003")
	require.ErrorIs(t, err, client.ErrClientNotFound)
	require.ErrorContains(t, err, "K-003")
	repo.AssertNotCalled(t, "Get")
}

func TestClientService_ResolveCaseInsensitive(t *testing.T) {
	ctx := context.Background()

	byNumber := &client.Client{ID: 1, Number: 7, Name: "Acme"}

	repo := &mocks.ClientRepository{}
	repo.On("GetByNumber", ctx, int64(7)).Return(byNumber, nil)

	svc := newService(repo, &mocks.ProjectRepository{}, &mocks.CounterRepository{})

	c, err := svc.Resolve(ctx, "k-007")
	require.NoError(t, err)
	require.Equal(t, "K-007", c.FormattedNumber())
}

func TestClientDisplayName(t *testing.T) {
	c := client.Client{Name: "Jane Doe", Company: "Acme GmbH"}
	require.Equal(t, "Acme GmbH", c.DisplayName())

	c.Company = ""
	require.Equal(t, "Jane Doe", c.DisplayName())
}

func TestClientFullAddress(t *testing.T) {
	c := client.Client{
		Street:      "Hauptstraße",
		HouseNumber: "12",
		PostalCode:  "10115",
		City:        "Berlin",
	}
	require.Equal(t, "Hauptstraße 12, 10115 Berlin", c.FullAddress())

	c.Street = ""
	require.Equal(t, "10115 Berlin", c.FullAddress())

	c.PostalCode = ""
	require.Equal(t, "", c.FullAddress())
}
