package client

import (
	"errors"
	"fmt"
)

var (
	// ErrClientNotFound indicates the client doesn't exist.
	ErrClientNotFound = errors.New("client not found")
	// ErrInvalidInput indicates invalid client input.
	ErrInvalidInput = errors.New("invalid client input")
)

// DependentProjectsError blocks deletion of a client that still owns projects.
type DependentProjectsError struct {
	ClientID int64
	Count    int
}

func (e *DependentProjectsError) Error() string {
	return fmt.Sprintf("client has %d dependent project(s); delete them first", e.Count)
}
