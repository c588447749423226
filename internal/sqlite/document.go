package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/docfab/docgen/internal/domain/document"
	"github.com/docfab/docgen/internal/repository"
)

// DocumentRepository implements repository.DocumentRepository for SQLite
type DocumentRepository struct {
	db *DB
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

const documentColumns = `id, doc_type, doc_number, client_id, project_id, file_path, amount, status, created_at, due_date`

// Insert persists a new document and assigns its surrogate id
func (r *DocumentRepository) Insert(ctx context.Context, d *document.Document) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (doc_type, doc_number, client_id, project_id, file_path, amount, status, created_at, due_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.Type,
		d.Number,
		nullInt(d.ClientID),
		nullInt(d.ProjectID),
		d.FilePath,
		nullFloat(d.Amount),
		d.Status,
		d.CreatedAt,
		d.DueDate,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("document reference: %w", repository.ErrForeignKeyViolation)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("document number %s: %w", d.Number, repository.ErrUniqueViolation)
		}
		return fmt.Errorf("failed to insert document: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get document id: %w", err)
	}
	d.ID = id

	return nil
}

// Get retrieves a document by surrogate id
func (r *DocumentRepository) Get(ctx context.Context, id int64) (*document.Document, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = ?`, id)

	var d document.Document
	if err := scanDocumentInto(row, &d); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &d, nil
}

// List returns all documents, most recent first
func (r *DocumentRepository) List(ctx context.Context) ([]document.Document, error) {
	return r.queryDocuments(ctx, `SELECT `+documentColumns+` FROM documents ORDER BY created_at DESC`)
}

// ListByClient returns a client's most recent documents
func (r *DocumentRepository) ListByClient(ctx context.Context, clientID int64, limit int) ([]document.Document, error) {
	return r.queryDocuments(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE client_id = ? ORDER BY created_at DESC LIMIT ?`,
		clientID, limit)
}

// Delete removes a document by surrogate id
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *DocumentRepository) queryDocuments(ctx context.Context, query string, args ...any) ([]document.Document, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		var d document.Document
		if err := scanDocumentInto(rows, &d); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return docs, nil
}

func scanDocumentInto(row rowScanner, d *document.Document) error {
	var clientID, projectID sql.NullInt64
	var amount sql.NullFloat64
	err := row.Scan(
		&d.ID,
		&d.Type,
		&d.Number,
		&clientID,
		&projectID,
		&d.FilePath,
		&amount,
		&d.Status,
		&d.CreatedAt,
		&d.DueDate,
	)
	if err != nil {
		return err
	}
	if clientID.Valid {
		d.ClientID = &clientID.Int64
	}
	if projectID.Valid {
		d.ProjectID = &projectID.Int64
	}
	if amount.Valid {
		d.Amount = &amount.Float64
	}
	return nil
}
