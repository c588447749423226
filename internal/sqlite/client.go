package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/docfab/docgen/internal/domain/client"
	"github.com/docfab/docgen/internal/repository"
)

// ClientRepository implements repository.ClientRepository for SQLite
type ClientRepository struct {
	db *DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, number, name, company, street, house_number, postal_code, city, country, email, phone, notes, created_at`

// Insert persists a new client and assigns its surrogate id. The id sequence
// is AUTOINCREMENT: ids are monotonic and never reused after a delete.
func (r *ClientRepository) Insert(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (number, name, company, street, house_number, postal_code, city, country, email, phone, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		c.Number,
		c.Name,
		c.Company,
		c.Street,
		c.HouseNumber,
		c.PostalCode,
		c.City,
		c.Country,
		c.Email,
		c.Phone,
		c.Notes,
		c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("client number %d: %w", c.Number, repository.ErrUniqueViolation)
		}
		return fmt.Errorf("failed to insert client: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get client id: %w", err)
	}
	c.ID = id

	return nil
}

// Get retrieves a client by surrogate id
func (r *ClientRepository) Get(ctx context.Context, id int64) (*client.Client, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	return scanClient(row)
}

// GetByNumber retrieves a client by display number
func (r *ClientRepository) GetByNumber(ctx context.Context, number int64) (*client.Client, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE number = ?`, number)
	return scanClient(row)
}

// List returns all clients ordered by display number
func (r *ClientRepository) List(ctx context.Context) ([]client.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		var c client.Client
		if err := scanClientInto(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}

	return clients, nil
}

// Delete removes a client by surrogate id
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*client.Client, error) {
	var c client.Client
	if err := scanClientInto(row, &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &c, nil
}

func scanClientInto(row rowScanner, c *client.Client) error {
	return row.Scan(
		&c.ID,
		&c.Number,
		&c.Name,
		&c.Company,
		&c.Street,
		&c.HouseNumber,
		&c.PostalCode,
		&c.City,
		&c.Country,
		&c.Email,
		&c.Phone,
		&c.Notes,
		&c.CreatedAt,
	)
}
