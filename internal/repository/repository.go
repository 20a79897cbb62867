package repository

import "errors"

// ErrNotFound is returned when a lookup matches no rows. Handlers translate
// it into a soft not-found response instead of a server error.
var ErrNotFound = errors.New("record not found")
