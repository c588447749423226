package project

import (
	"time"

	"github.com/docfab/docgen/internal/refs"
)

// StatusActive is the default status for new projects. Status is free-form;
// no workflow is enforced over it.
const StatusActive = "active"

// Project is a unit of work owned by exactly one client. Number is scoped to
// the owning client: each client's projects are numbered 1..N independently.
type Project struct {
	ID          int64     `json:"id"`
	Number      int64     `json:"number"`
	ClientID    int64     `json:"client_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	HourlyRate  *float64  `json:"hourly_rate,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// FormattedNumber returns the display identifier, e.g. "P-003-02". The owning
// client's display number must be supplied by the caller.
func (p *Project) FormattedNumber(clientNumber int64) string {
	return refs.FormatProjectNumber(clientNumber, p.Number)
}

// CreateRequest defines project creation inputs. ID, Number, and CreatedAt
// are assigned by the registry.
type CreateRequest struct {
	ClientID    int64
	Name        string
	Description string
	HourlyRate  *float64
	Status      string
}
