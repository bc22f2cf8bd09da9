package importer

import "errors"

var (
	// ErrMalformedSnapshot is returned when a snapshot fails to decode
	// or carries an unknown enum code.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrRepositoriesRequired is returned when the repository bundle is
	// not provided.
	ErrRepositoriesRequired = errors.New("repositories required")
)
