package client

import (
	"strings"
	"time"

	"github.com/docfab/docgen/internal/refs"
)

// Client is a registered customer. ID is an internal surrogate key; Number is
// the display sequence number embedded into identifiers and file names, unique
// across all clients and never reused after deletion.
type Client struct {
	ID          int64     `json:"id"`
	Number      int64     `json:"number"`
	Name        string    `json:"name"`
	Company     string    `json:"company,omitempty"`
	Street      string    `json:"street,omitempty"`
	HouseNumber string    `json:"house_number,omitempty"`
	PostalCode  string    `json:"postal_code,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayName returns the company name when set, otherwise the contact name.
func (c *Client) DisplayName() string {
	if c.Company != "" {
		return c.Company
	}
	return c.Name
}

// FormattedNumber returns the display identifier, e.g. "K-003".
func (c *Client) FormattedNumber() string {
	return refs.FormatClientNumber(c.Number)
}

// FullAddress joins street+house number and postal code+city with a comma,
// omitting empty parts.
func (c *Client) FullAddress() string {
	var parts []string
	if c.Street != "" && c.HouseNumber != "" {
		parts = append(parts, c.Street+" "+c.HouseNumber)
	}
	if c.PostalCode != "" && c.City != "" {
		parts = append(parts, c.PostalCode+" "+c.City)
	}
	return strings.Join(parts, ", ")
}

// CreateRequest defines client creation inputs. ID, Number, and CreatedAt are
// assigned by the registry; callers never supply them.
type CreateRequest struct {
	Name        string
	Company     string
	Street      string
	HouseNumber string
	PostalCode  string
	City        string
	Country     string
	Email       string
	Phone       string
	Notes       string
}
