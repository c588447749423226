package counter

import "errors"

var (
	// ErrUnknownCounter indicates a counter name outside the known set.
	// Unknown names are a configuration error, never created implicitly.
	ErrUnknownCounter = errors.New("unknown counter name")
)
