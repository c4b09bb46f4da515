package repository

import "errors"

var (
	// ErrNotFound is returned when a requested history record does not exist.
	ErrNotFound = errors.New("record not found")
)
