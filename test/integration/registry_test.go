// Package integration exercises the full registry stack against both storage
// backends: every scenario runs once over flat files and once over sqlite,
// asserting the same behavior from identical call sequences.
package integration

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/docfab/docgen/internal/domain/client"
	"github.com/docfab/docgen/internal/domain/counter"
	"github.com/docfab/docgen/internal/domain/document"
	"github.com/docfab/docgen/internal/domain/project"
	"github.com/docfab/docgen/internal/jsonfile"
	"github.com/docfab/docgen/internal/refs"
	"github.com/docfab/docgen/internal/sqlite"
)

// registry bundles the services wired over one backend.
type registry struct {
	clients   *client.Service
	projects  *project.Service
	documents *document.Service
	alloc     *counter.Allocator
}

func newJSONRegistry(t *testing.T) *registry {
	t.Helper()
	dir := t.TempDir()

	clientRepo := jsonfile.NewClientRepository(filepath.Join(dir, "clients.json"))
	projectRepo := jsonfile.NewProjectRepository(filepath.Join(dir, "projects.json"))
	documentRepo := jsonfile.NewDocumentRepository(filepath.Join(dir, "documents.json"))
	counterRepo := jsonfile.NewCounterRepository(filepath.Join(dir, "counters.json"))

	return wire(clientRepo, projectRepo, documentRepo, counterRepo)
}

func newSQLiteRegistry(t *testing.T) *registry {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Init())

	return wire(
		sqlite.NewClientRepository(db),
		sqlite.NewProjectRepository(db),
		sqlite.NewDocumentRepository(db),
		sqlite.NewCounterRepository(db),
	)
}

func wire(clients client.Repository, projects project.Repository, documents document.Repository, counters counter.Repository) *registry {
	alloc := counter.NewAllocator(counters, nil)
	projectSvc := project.NewService(projects, clients, nil)
	return &registry{
		clients:   client.NewService(clients, projects, alloc, nil),
		projects:  projectSvc,
		documents: document.NewService(documents, clients, projects, alloc, nil),
		alloc:     alloc,
	}
}

// backends lists the constructors each scenario runs against.
var backends = []struct {
	name string
	open func(t *testing.T) *registry
}{
	{"json", newJSONRegistry},
	{"sqlite", newSQLiteRegistry},
}

func TestClientNumbersMonotonic(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			reg := b.open(t)
			ctx := context.Background()

			for i := 1; i <= 5; i++ {
				c, err := reg.clients.Create(ctx, client.CreateRequest{Name: fmt.Sprintf("Client %d", i)})
				require.NoError(t, err)
				require.Equal(t, int64(i), c.Number)
				require.Equal(t, fmt.Sprintf("K-%03d", i), c.FormattedNumber())
			}
		})
	}
}

func TestClientNumbersNotReusedAfterDelete(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			reg := b.open(t)
			ctx := context.Background()

			c1, err := reg.clients.Create(ctx, client.CreateRequest{Name: "First"})
			require.NoError(t, err)
			require.NoError(t, reg.clients.Delete(ctx, c1.ID))

			c2, err := reg.clients.Create(ctx, client.CreateRequest{Name: "Second"})
			require.NoError(t, err)
			require.Equal(t, int64(2), c2.Number)
		})
	}
}

func TestProjectNumberingPerClient(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			reg := b.open(t)
			ctx := context.Background()

			a, err := reg.clients.Create(ctx, client.CreateRequest{Name: "A"})
			require.NoError(t, err)
			z, err := reg.clients.Create(ctx, client.CreateRequest{Name: "Z"})
			require.NoError(t, err)

			p1, err := reg.projects.Create(ctx, project.CreateRequest{ClientID: a.ID, Name: "Site"})
			require.NoError(t, err)
			p2, err := reg.projects.Create(ctx, project.CreateRequest{ClientID: a.ID, Name: "App"})
			require.NoError(t, err)
			p3, err := reg.projects.Create(ctx, project.CreateRequest{ClientID: z.ID, Name: "Shop"})
			require.NoError(t, err)

			require.Equal(t, int64(1), p1.Number)
			require.Equal(t, int64(2), p2.Number)
			require.Equal(t, int64(1), p3.Number)

			require.Equal(t, "P-001-02", p2.FormattedNumber(a.Number))
		})
	}
}

func TestProjectGapsNotRefilled(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			reg := b.open(t)
			ctx := context.Background()

			c, err := reg.clients.Create(ctx, client.CreateRequest{Name: "Acme"})
			require.NoError(t, err)

			var ids []int64
			for _, name := range []string{"One", "Two", "Three"} {
				p, err := reg.projects.Create(ctx, project.CreateRequest{ClientID: c.ID, Name: name})
				require.NoError(t, err)
				ids = append(ids, p.ID)
			}
			require.NoError(t, reg.projects.Delete(ctx, ids[1]))

			// Remaining numbers are {1, 3}; the next insert continues past the
			// highest, never refilling the gap.
			p4, err := reg.projects.Create(ctx, project.CreateRequest{ClientID: c.ID, Name: "Four"})
			require.NoError(t, err)
			require.Equal(t, int64(4), p4.Number)

			owned, err := reg.projects.ListByClient(ctx, c.ID)
			require.NoError(t, err)
			numbers := make([]int64, len(owned))
			for i, p := range owned {
				numbers[i] = p.Number
			}
			require.ElementsMatch(t, []int64{1, 3, 4}, numbers)
		})
	}
}

func TestDeleteClientBlockedByProjects(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			reg := b.open(t)
			ctx := context.Background()

			c, err := reg.clients.Create(ctx, client.CreateRequest{Name: "Acme"})
			require.NoError(t, err)
			p, err := reg.projects.Create(ctx, project.CreateRequest{ClientID: c.ID, Name: "Site"})
			require.NoError(t, err)

			err = reg.clients.Delete(ctx, c.ID)
			var depErr *client.DependentProjectsError
			require.ErrorAs(t, err, &depErr)
			require.Equal(t, 1, depErr.Count)

			// The failed delete must leave the client readable
			got, err := reg.clients.Get(ctx, c.ID)
			require.NoError(t, err)
			require.Equal(t, "Acme", got.Name)

			// Removing the project unblocks the delete
			require.NoError(t, reg.projects.Delete(ctx, p.ID))
			require.NoError(t, reg.clients.Delete(ctx, c.ID))

			_, err = reg.clients.Get(ctx, c.ID)
			require.ErrorIs(t, err, client.ErrClientNotFound)
		})
	}
}

func TestResolveClientReferences(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			reg := b.open(t)
			ctx := context.Background()

			c, err := reg.clients.Create(ctx, client.CreateRequest{Name: "Acme"})
			require.NoError(t, err)

			for _, input := range []string{"1", "K-001", "k-001", "K-1"} {
				got, err := reg.clients.Resolve(ctx, input)
				require.NoError(t, err, "input %q", input)
				require.Equal(t, c.ID, got.ID)
			}

			_, err = reg.clients.Resolve(ctx, "K-999")
			require.ErrorIs(t, err, client.ErrClientNotFound)

			_, err = reg.clients.Resolve(ctx, "acme")
			require.ErrorIs(t, err, refs.ErrInvalidRef)
		})
	}
}

func TestResolveProjectReference(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			reg := b.open(t)
			ctx := context.Background()

			// Push the client display number past the internal id so the test
			// catches a resolver matching on the wrong column.
			first, err := reg.clients.Create(ctx, client.CreateRequest{Name: "Padding"})
			require.NoError(t, err)
			require.NoError(t, reg.clients.Delete(ctx, first.ID))

			c, err := reg.clients.Create(ctx, client.CreateRequest{Name: "Acme"})
			require.NoError(t, err)
			require.Equal(t, int64(2), c.Number)

			p, err := reg.projects.Create(ctx, project.CreateRequest{ClientID: c.ID, Name: "Site"})
			require.NoError(t, err)

			got, err := reg.projects.Resolve(ctx, fmt.Sprintf("P-%03d-%02d", c.Number, p.Number))
			require.NoError(t, err)
			require.Equal(t, p.ID, got.ID)

			_, err = reg.projects.Resolve(ctx, "P-002-99")
			require.ErrorIs(t, err, project.ErrProjectNotFound)

			_, err = reg.projects.Resolve(ctx, "P-002")
			require.ErrorIs(t, err, refs.ErrInvalidRef)
		})
	}
}

func TestDocumentNumbering(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			reg := b.open(t)
			ctx := context.Background()
			year := time.Now().UTC().Year()

			d1, err := reg.documents.Create(ctx, document.CreateRequest{Type: document.TypeInvoice, FilePath: "a.pdf"})
			require.NoError(t, err)
			require.Equal(t, fmt.Sprintf("RE-%d-001", year), d1.Number)

			d2, err := reg.documents.Create(ctx, document.CreateRequest{Type: document.TypeInvoice, FilePath: "b.pdf"})
			require.NoError(t, err)
			require.Equal(t, fmt.Sprintf("RE-%d-002", year), d2.Number)

			// Each type draws from its own counter
			d3, err := reg.documents.Create(ctx, document.CreateRequest{Type: document.TypeOffer, FilePath: "c.pdf"})
			require.NoError(t, err)
			require.Equal(t, fmt.Sprintf("AN-%d-001", year), d3.Number)
		})
	}
}

func TestUnknownCounterRejectedBeforeStorage(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			reg := b.open(t)
			ctx := context.Background()

			_, err := reg.alloc.Next(ctx, "timesheet")
			require.ErrorIs(t, err, counter.ErrUnknownCounter)

			// The rejection must not have advanced any known counter
			for _, name := range counter.KnownNames {
				v, err := reg.alloc.Peek(ctx, name)
				require.NoError(t, err)
				require.Zero(t, v)
			}
		})
	}
}

func TestCountersIndependent(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			reg := b.open(t)
			ctx := context.Background()

			_, err := reg.clients.Create(ctx, client.CreateRequest{Name: "Acme"})
			require.NoError(t, err)
			_, err = reg.documents.Create(ctx, document.CreateRequest{Type: document.TypeInvoice, FilePath: "a.pdf"})
			require.NoError(t, err)

			clientValue, err := reg.alloc.Peek(ctx, counter.NameClient)
			require.NoError(t, err)
			require.Equal(t, int64(1), clientValue)

			invoiceValue, err := reg.alloc.Peek(ctx, counter.NameInvoice)
			require.NoError(t, err)
			require.Equal(t, int64(1), invoiceValue)

			offerValue, err := reg.alloc.Peek(ctx, counter.NameOffer)
			require.NoError(t, err)
			require.Zero(t, offerValue)
		})
	}
}

func TestReadsAreIdempotent(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			reg := b.open(t)
			ctx := context.Background()

			c, err := reg.clients.Create(ctx, client.CreateRequest{Name: "Acme"})
			require.NoError(t, err)

			for i := 0; i < 3; i++ {
				got, err := reg.clients.GetByNumber(ctx, c.Number)
				require.NoError(t, err)
				require.Equal(t, c.ID, got.ID)

				clients, err := reg.clients.List(ctx)
				require.NoError(t, err)
				require.Len(t, clients, 1)
			}

			// Reading never advances the allocator
			v, err := reg.alloc.Peek(ctx, counter.NameClient)
			require.NoError(t, err)
			require.Equal(t, int64(1), v)
		})
	}
}
