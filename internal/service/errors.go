package service

import "errors"

var (
	// ErrInvalidOrigin is returned when the origin location has no name.
	ErrInvalidOrigin = errors.New("invalid origin location")

	// ErrInvalidDestination is returned when the destination location has no name.
	ErrInvalidDestination = errors.New("invalid destination location")

	// ErrInvalidDate is returned when the travel date is empty.
	ErrInvalidDate = errors.New("invalid travel date")

	// ErrInvalidExcludeMode is returned when the excluded mode is not a known
	// transport mode.
	ErrInvalidExcludeMode = errors.New("invalid exclude mode")
)
