package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/docfab/docgen/internal/domain/project"
	"github.com/docfab/docgen/internal/repository"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, number, client_id, name, description, hourly_rate, status, created_at`

// Insert persists a new project, assigning the surrogate id and the
// per-client number. Number computation and insert run in one transaction so
// two projects for the same client cannot be given the same number.
func (r *ProjectRepository) Insert(ctx context.Context, p *project.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Per-client numbering: max over existing numbers, gaps from deletions
	// are never refilled.
	var number int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(number), 0) + 1 FROM projects WHERE client_id = ?`,
		p.ClientID,
	).Scan(&number)
	if err != nil {
		return fmt.Errorf("failed to compute project number: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO projects (number, client_id, name, description, hourly_rate, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		number,
		p.ClientID,
		p.Name,
		p.Description,
		nullFloat(p.HourlyRate),
		p.Status,
		p.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("client %d: %w", p.ClientID, repository.ErrForeignKeyViolation)
		}
		return fmt.Errorf("failed to insert project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get project id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	p.ID = id
	p.Number = number
	return nil
}

// Get retrieves a project by surrogate id
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)

	var p project.Project
	if err := scanProjectInto(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &p, nil
}

// List returns all projects ordered by client and number
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY client_id, number`)
}

// ListByClient returns a client's projects ordered by number
func (r *ProjectRepository) ListByClient(ctx context.Context, clientID int64) ([]project.Project, error) {
	return r.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE client_id = ? ORDER BY number`, clientID)
}

// CountByClient returns how many projects reference the client
func (r *ProjectRepository) CountByClient(ctx context.Context, clientID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM projects WHERE client_id = ?`, clientID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}

// Delete removes a project by surrogate id
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
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

func (r *ProjectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := scanProjectInto(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

func scanProjectInto(row rowScanner, p *project.Project) error {
	var rate sql.NullFloat64
	err := row.Scan(
		&p.ID,
		&p.Number,
		&p.ClientID,
		&p.Name,
		&p.Description,
		&rate,
		&p.Status,
		&p.CreatedAt,
	)
	if err != nil {
		return err
	}
	if rate.Valid {
		p.HourlyRate = &rate.Float64
	}
	return nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
