package repository

import "errors"

// ErrNotFound indicates the identifier resolves to no stored record.
var ErrNotFound = errors.New("not found")
