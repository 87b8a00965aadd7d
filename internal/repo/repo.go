package repo

import "errors"

// ErrNotFound is returned when a record is not in the store.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned on unique-constraint violations.
var ErrAlreadyExists = errors.New("already exists")
