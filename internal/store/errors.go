package store

import "errors"

// ErrTokenNotFound is returned by [TokenStore.LoadToken] when no token is
// stored for the requested server.
var ErrTokenNotFound = errors.New("token not found")

// ErrUnknownTokenBackend is returned by NewTokenStore for an unsupported
// backend name.
var ErrUnknownTokenBackend = errors.New("unknown token backend")

// Low-level operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrKeyring is returned when the OS keyring rejects an operation.
	ErrKeyring = errors.New("keyring operation failed")
)
