package repository

import "errors"

// ErrNotFound is returned by every repository when an identifier does not
// resolve to a row. Handlers translate it to a 404.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when an insert loses to a uniqueness constraint.
// Services translate it to a field-level validation error.
var ErrConflict = errors.New("record already exists")
