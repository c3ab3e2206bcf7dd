package session

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that need a signed in user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("session already started")

	// ErrTokenStore wraps failures of the token store.
	ErrTokenStore = errors.New("token store failure")

	// ErrProfileFetch wraps a failed profile request that decided the state.
	ErrProfileFetch = errors.New("profile fetch failed")

	// ErrInvalidated is recorded as the cause when a session is dropped
	// because the backend no longer accepts its token.
	ErrInvalidated = errors.New("session invalidated")
)
