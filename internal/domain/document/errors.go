package document

import "errors"

var (
	// ErrDocumentNotFound indicates the document doesn't exist.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrInvalidInput indicates invalid document input.
	ErrInvalidInput = errors.New("invalid document input")
	// ErrUnknownType indicates a document type without a counter or prefix.
	ErrUnknownType = errors.New("unknown document type")
)
