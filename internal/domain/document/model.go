package document

import "time"

// Document types. Each type draws its numbers from the counter of the same
// name and carries its own display prefix.
const (
	TypeInvoice       = "invoice"
	TypeOffer         = "offer"
	TypeCredentials   = "credentials"
	TypeConcept       = "concept"
	TypeDocumentation = "documentation"
)

// StatusDraft is the default status for new documents.
const StatusDraft = "draft"

// prefixes maps document types to the prefix of their display numbers,
// e.g. "RE-2026-003" for the third invoice of 2026.
var prefixes = map[string]string{
	TypeInvoice:       "RE",
	TypeOffer:         "AN",
	TypeCredentials:   "ZD",
	TypeConcept:       "KO",
	TypeDocumentation: "DOC",
}

// Document is a generated document record. Number is the unique display
// identifier embedded in file names and metadata; ClientID and ProjectID are
// optional references, validated at creation when set.
type Document struct {
	ID        int64     `json:"id"`
	Type      string    `json:"doc_type"`
	Number    string    `json:"doc_number"`
	ClientID  *int64    `json:"client_id,omitempty"`
	ProjectID *int64    `json:"project_id,omitempty"`
	FilePath  string    `json:"file_path"`
	Amount    *float64  `json:"amount,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	DueDate   string    `json:"due_date,omitempty"`
}

// CreateRequest defines document creation inputs. ID, Number, and CreatedAt
// are assigned by the registry.
type CreateRequest struct {
	Type      string
	ClientID  *int64
	ProjectID *int64
	FilePath  string
	Amount    *float64
	Status    string
	DueDate   string
}
