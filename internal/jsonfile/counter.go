package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/docfab/docgen/internal/repository"
)

// counters is the persisted shape of the counter set: one integer field per
// known counter name, each defaulting to 0 when absent from the file.
type counters struct {
	Client        int64 `json:"client"`
	Invoice       int64 `json:"invoice"`
	Offer         int64 `json:"offer"`
	Credentials   int64 `json:"credentials"`
	Concept       int64 `json:"concept"`
	Documentation int64 `json:"documentation"`
}

func (c *counters) field(name string) (*int64, error) {
	switch name {
	case "client":
		return &c.Client, nil
	case "invoice":
		return &c.Invoice, nil
	case "offer":
		return &c.Offer, nil
	case "credentials":
		return &c.Credentials, nil
	case "concept":
		return &c.Concept, nil
	case "documentation":
		return &c.Documentation, nil
	default:
		return nil, fmt.Errorf("counter %q: %w", name, repository.ErrNotFound)
	}
}

// CounterRepository implements repository.CounterRepository over a single
// JSON object. Every increment is a full read-modify-write of the file.
type CounterRepository struct {
	path string
}

// NewCounterRepository creates a repository backed by the given file path.
func NewCounterRepository(path string) *CounterRepository {
	return &CounterRepository{path: path}
}

// Init writes an all-zero counter set if the file doesn't exist yet.
func (r *CounterRepository) Init() error {
	if _, err := r.load(); err != nil {
		return err
	}
	if exists(r.path) {
		return nil
	}
	return r.save(&counters{})
}

// Increment adds 1 to the named counter and persists the full set before
// returning the new value.
func (r *CounterRepository) Increment(ctx context.Context, name string) (int64, error) {
	set, err := r.load()
	if err != nil {
		return 0, err
	}

	field, err := set.field(name)
	if err != nil {
		return 0, err
	}
	*field++

	if err := r.save(set); err != nil {
		return 0, err
	}
	return *field, nil
}

// Value returns the current value without incrementing.
func (r *CounterRepository) Value(ctx context.Context, name string) (int64, error) {
	set, err := r.load()
	if err != nil {
		return 0, err
	}

	field, err := set.field(name)
	if err != nil {
		return 0, err
	}
	return *field, nil
}

func (r *CounterRepository) load() (*counters, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return &counters{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.path, err)
	}

	var set counters
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", r.path, err)
	}
	return &set, nil
}

func (r *CounterRepository) save(set *counters) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", r.path, err)
	}
	return writeFile(r.path, data)
}
