package bufset

import "errors"

var (
	// ErrNameExists is returned by CreateNamed and Rename when the
	// requested name is already in use.
	ErrNameExists = errors.New("bufset: name already in use")
	// ErrNotFound is returned when an id or name does not resolve to a
	// managed buffer.
	ErrNotFound = errors.New("bufset: buffer not found")
)
