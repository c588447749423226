// Package sqlite is the relational storage backend. Unlike the flat-file
// backend, surrogate ids are AUTOINCREMENT and never reused, and counter
// increments run under the database's own locking, which makes this the
// backend to use when invocations may overlap.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// Init creates the schema if it doesn't exist and seeds the counter rows.
// Safe to call on every invocation.
func (db *DB) Init() error {
	schema := `
-- Clients table. number is the display sequence, unique and never reused.
CREATE TABLE IF NOT EXISTS clients (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    number INTEGER UNIQUE NOT NULL,
    name TEXT NOT NULL,
    company TEXT NOT NULL DEFAULT '',
    street TEXT NOT NULL DEFAULT '',
    house_number TEXT NOT NULL DEFAULT '',
    postal_code TEXT NOT NULL DEFAULT '',
    city TEXT NOT NULL DEFAULT '',
    country TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Projects table. number is scoped to the owning client.
CREATE TABLE IF NOT EXISTS projects (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    number INTEGER NOT NULL,
    client_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    hourly_rate REAL,
    status TEXT NOT NULL DEFAULT 'active',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (client_id) REFERENCES clients(id),
    UNIQUE(client_id, number)
);
CREATE INDEX IF NOT EXISTS idx_client_projects ON projects(client_id);

-- Documents table. doc_number is the display identifier, unique for all time.
CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    doc_type TEXT NOT NULL,
    doc_number TEXT UNIQUE NOT NULL,
    client_id INTEGER,
    project_id INTEGER,
    file_path TEXT NOT NULL,
    amount REAL,
    status TEXT NOT NULL DEFAULT 'draft',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    due_date TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (client_id) REFERENCES clients(id),
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX IF NOT EXISTS idx_client_documents ON documents(client_id);

-- Counters backing display numbering.
CREATE TABLE IF NOT EXISTS counters (
    name TEXT PRIMARY KEY,
    value INTEGER NOT NULL DEFAULT 0
);

INSERT OR IGNORE INTO counters (name, value) VALUES ('client', 0);
INSERT OR IGNORE INTO counters (name, value) VALUES ('invoice', 0);
INSERT OR IGNORE INTO counters (name, value) VALUES ('offer', 0);
INSERT OR IGNORE INTO counters (name, value) VALUES ('credentials', 0);
INSERT OR IGNORE INTO counters (name, value) VALUES ('concept', 0);
INSERT OR IGNORE INTO counters (name, value) VALUES ('documentation', 0);
`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}
