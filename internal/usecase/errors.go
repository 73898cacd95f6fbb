package usecase

import "errors"

var (
	// ErrInvalidInput covers empty or malformed skill and requirement
	// entries; nothing is retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorage covers any persistence failure. Batch association
	// rolls back fully before this surfaces.
	ErrStorage = errors.New("storage failure")

	// ErrNotFound surfaces when a referenced entity does not exist, such
	// as recording a match against an unknown target.
	ErrNotFound = errors.New("not found")
)
