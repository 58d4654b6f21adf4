package repository

import "errors"

// ErrNotFound is returned when a lookup references an id that is not in
// the store.
var ErrNotFound = errors.New("record not found")
