package histstore

import "errors"

// ErrLeadingSpace is returned by Add when the command begins with a
// space, which by shell convention excludes it from history.
var ErrLeadingSpace = errors.New("histstore: command has a leading space, excluded from history")

// ErrEmptyCommand is returned by Add when the normalized command is
// empty after trimming.
var ErrEmptyCommand = errors.New("histstore: empty command")

// ErrNotFound is returned when an entry id does not exist in the store,
// either because it was never added or because it has been evicted by
// ring-buffer overflow.
var ErrNotFound = errors.New("histstore: entry not found")
