package jsonfile

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docfab/docgen/internal/domain/document"
	"github.com/docfab/docgen/internal/repository"
	"github.com/stretchr/testify/require"
)

func newDocumentRepo(t *testing.T) *DocumentRepository {
	t.Helper()
	return NewDocumentRepository(filepath.Join(t.TempDir(), "documents.json"))
}

func TestDocumentRepository_InsertAndGet(t *testing.T) {
	repo := newDocumentRepo(t)
	ctx := context.Background()

	clientID := int64(3)
	amount := 1200.50
	d := &document.Document{
		Type:      document.TypeInvoice,
		Number:    "RE-2026-001",
		ClientID:  &clientID,
		FilePath:  "out/invoice.pdf",
		Amount:    &amount,
		Status:    document.StatusDraft,
		CreatedAt: time.Now().UTC(),
		DueDate:   "2026-10-01",
	}
	require.NoError(t, repo.Insert(ctx, d))
	require.Equal(t, int64(1), d.ID)

	got, err := repo.Get(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, "RE-2026-001", got.Number)
	require.NotNil(t, got.ClientID)
	require.Equal(t, clientID, *got.ClientID)
	require.NotNil(t, got.Amount)
	require.Equal(t, 1200.50, *got.Amount)
	require.Equal(t, "2026-10-01", got.DueDate)
	require.Nil(t, got.ProjectID)
}

func TestDocumentRepository_GetNotFound(t *testing.T) {
	repo := newDocumentRepo(t)

	_, err := repo.Get(context.Background(), 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDocumentRepository_ListByClientLimit(t *testing.T) {
	repo := newDocumentRepo(t)
	ctx := context.Background()

	clientID := int64(1)
	other := int64(2)
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		d := &document.Document{
			Type:      document.TypeInvoice,
			Number:    fmt.Sprintf("RE-2026-%03d", i+1),
			ClientID:  &clientID,
			FilePath:  fmt.Sprintf("out/%d.pdf", i+1),
			Status:    document.StatusDraft,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Insert(ctx, d))
	}
	noise := &document.Document{Type: "offer", Number: "AN-2026-001", ClientID: &other, FilePath: "x.pdf", Status: "draft", CreatedAt: base}
	require.NoError(t, repo.Insert(ctx, noise))

	docs, err := repo.ListByClient(ctx, clientID, 10)
	require.NoError(t, err)
	require.Len(t, docs, 10)
	// Most recent first
	require.Equal(t, "RE-2026-012", docs[0].Number)
	require.Equal(t, "RE-2026-003", docs[9].Number)
}

func TestDocumentRepository_ListByClientSkipsUnassigned(t *testing.T) {
	repo := newDocumentRepo(t)
	ctx := context.Background()

	clientID := int64(1)
	assigned := &document.Document{Type: "invoice", Number: "RE-2026-001", ClientID: &clientID, FilePath: "a.pdf", Status: "draft", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Insert(ctx, assigned))

	unassigned := &document.Document{Type: "concept", Number: "KO-2026-001", FilePath: "b.pdf", Status: "draft", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Insert(ctx, unassigned))

	docs, err := repo.ListByClient(ctx, clientID, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "RE-2026-001", docs[0].Number)
}

func TestDocumentRepository_DeleteNotFound(t *testing.T) {
	repo := newDocumentRepo(t)

	err := repo.Delete(context.Background(), 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
