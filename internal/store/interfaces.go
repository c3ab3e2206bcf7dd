// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client's session token between runs.
//
// Two [TokenStore] backends exist: a local SQLite database (schema managed by
// the migrations package) and the operating system keyring. Tokens are keyed
// by the backend address, so one machine can keep sessions for several
// servers.
package store

import "context"

//go:generate mockgen -destination=../mock/token_store_mock.go -package=mock github.com/MKhiriev/go-edu-resources/internal/store TokenStore

// TokenStore keeps one bearer token per server address.
type TokenStore interface {
	// LoadToken returns the token stored for server, or [ErrTokenNotFound].
	LoadToken(ctx context.Context, server string) (string, error)

	// SaveToken stores token for server, replacing any previous value.
	SaveToken(ctx context.Context, server, token string) error

	// DeleteToken removes the token for server. Deleting a missing token is
	// not an error.
	DeleteToken(ctx context.Context, server string) error
}
