package repository

import "github.com/docfab/docgen/internal/repository/errs"

// The sentinel values are declared in the errs subpackage so the domain
// services can reference them without importing this package, whose
// interfaces depend on the domain model types. They are re-exported here
// unchanged: errors.Is sees the same values either way.
var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errs.ErrNotFound

	// ErrForeignKeyViolation is returned when a referenced parent record doesn't exist
	ErrForeignKeyViolation = errs.ErrForeignKeyViolation

	// ErrUniqueViolation is returned when an insert would duplicate a unique value
	ErrUniqueViolation = errs.ErrUniqueViolation
)
