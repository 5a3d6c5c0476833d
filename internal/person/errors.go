package person

import "errors"

var (
	// ErrNotFound is returned when no document matches a single-result operation.
	ErrNotFound = errors.New("person not found")

	// ErrNameRequired is returned when a record without a name is written.
	ErrNameRequired = errors.New("person name is required")

	// ErrNilPerson is returned when a nil record is passed to a write.
	ErrNilPerson = errors.New("person cannot be nil")

	// ErrNoPeople is returned by CreateMany for an empty batch.
	ErrNoPeople = errors.New("no people to create")

	// ErrInvalidID is returned for malformed identifiers.
	ErrInvalidID = errors.New("invalid person id")

	// ErrEmptyUpdate is returned when an update sets no fields.
	ErrEmptyUpdate = errors.New("update sets no fields")

	// ErrUnsupportedField is returned for sort or projection on an unknown field.
	ErrUnsupportedField = errors.New("unsupported person field")

	ErrCreate = errors.New("failed to create person")
	ErrQuery  = errors.New("failed to query people")
	ErrUpdate = errors.New("failed to update person")
	ErrDelete = errors.New("failed to delete person")
)
