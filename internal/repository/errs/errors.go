// Package errs holds the sentinel errors shared by the repository contracts
// and the domain services. It sits below internal/repository so the domain
// packages can depend on the sentinels without importing the interface
// definitions, which reference the domain model types and would otherwise
// form an import cycle. The repository package re-exports these values under
// the same names.
package errs

import "errors"

var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrForeignKeyViolation is returned when a referenced parent record doesn't exist
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrUniqueViolation is returned when an insert would duplicate a unique value
	ErrUniqueViolation = errors.New("unique constraint violation")
)
