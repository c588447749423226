// Package refs formats and parses the display identifiers shown to users:
// client numbers ("K-001"), project numbers ("P-001-02"), and document
// numbers ("RE-2026-003"). Parsing is pure; resolving a parsed reference
// against stored records is the job of the domain services.
package refs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRef indicates a reference string that doesn't match any accepted form.
var ErrInvalidRef = errors.New("invalid reference format")

// FormatClientNumber renders a client display number, e.g. 3 -> "K-003".
func FormatClientNumber(number int64) string {
	return fmt.Sprintf("K-%03d", number)
}

// FormatProjectNumber renders a project display number, e.g. (3, 2) -> "P-003-02".
// The first component is the owning client's display number, not its id.
func FormatProjectNumber(clientNumber, projectNumber int64) string {
	return fmt.Sprintf("P-%03d-%02d", clientNumber, projectNumber)
}

// FormatDocumentNumber renders a document number, e.g. ("RE", 2026, 3) -> "RE-2026-003".
func FormatDocumentNumber(prefix string, year int, number int64) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, number)
}

// ClientRef is a parsed client reference. A bare integer may name either a
// display number or an internal id (number takes precedence when resolving);
// a "K-"-prefixed reference names a display number only.
type ClientRef struct {
	Value      int64
	NumberOnly bool
}

// ParseClientRef accepts a bare integer ("3") or a case-insensitive
// "K-"-prefixed number ("K-003", "k-3").
func ParseClientRef(input string) (ClientRef, error) {
	s := strings.TrimSpace(input)

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ClientRef{Value: n}, nil
	}

	if rest, ok := cutPrefixFold(s, "K-"); ok {
		if n, err := strconv.ParseInt(rest, 10, 64); err == nil {
			return ClientRef{Value: n, NumberOnly: true}, nil
		}
	}

	return ClientRef{}, fmt.Errorf("%w: %q", ErrInvalidRef, input)
}

// ParseProjectRef accepts "P-XXX-YY" (case-insensitive prefix) and returns the
// client display number and the per-client project number.
func ParseProjectRef(input string) (clientNumber, projectNumber int64, err error) {
	s := strings.TrimSpace(input)

	rest, ok := cutPrefixFold(s, "P-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q (expected P-XXX-YY)", ErrInvalidRef, input)
	}

	parts := strings.Split(rest, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q (expected P-XXX-YY)", ErrInvalidRef, input)
	}

	clientNumber, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q (expected P-XXX-YY)", ErrInvalidRef, input)
	}
	projectNumber, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q (expected P-XXX-YY)", ErrInvalidRef, input)
	}

	return clientNumber, projectNumber, nil
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
