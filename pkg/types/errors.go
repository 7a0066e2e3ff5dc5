package types

import "errors"

// Standard errors returned by the store. Callers match with errors.Is.
var (
	// ErrStorageUnavailable means the database file could not be opened or
	// created. Fatal to the calling operation; nothing was written.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNotFound means a lookup by ID matched no row.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidID means an operation received a non-positive ID.
	ErrInvalidID = errors.New("invalid entity ID")

	// ErrDuplicateName means a unique name (week, menu item) already exists.
	ErrDuplicateName = errors.New("name already exists")

	// ErrDuplicatePhone means a customer phone number already exists.
	ErrDuplicatePhone = errors.New("phone number already registered")

	// ErrAlreadyExists means a credential username already exists.
	ErrAlreadyExists = errors.New("username already exists")

	// ErrEmptyOrder means CreateOrder was called with no lines.
	ErrEmptyOrder = errors.New("order must have at least one line")
)
