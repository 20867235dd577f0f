package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrStorage indicates the persistence backend rejected a read or write.
	// A failed operation leaves the persisted collections unchanged.
	ErrStorage = errors.New("storage failure")

	// ErrEmptyCart indicates a checkout attempt with no cart lines.
	ErrEmptyCart = errors.New("checkout on empty cart")

	// ErrInvalidInput indicates a malformed argument, such as a non-positive
	// quantity or a negative price.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSaveIncomplete indicates saveForLater stored the saved item but
	// failed to remove the matching cart line afterwards.
	ErrSaveIncomplete = errors.New("saved item stored but cart line not removed")
)
