// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the authentication state of the client.
//
// A [Session] starts in [StateLoading]. [Session.Start] reads the stored
// token, verifies it by fetching the profile and resolves to either
// [StateAuthenticated] or [StateAnonymous]; [Session.Ready] is closed at that
// point. Login, Register and Logout move between the two resolved states and
// keep the adapter's bearer token and the token store in step with them.
//
// The stored token is deleted only when the backend rejects it
// (401 or 403). A network or server failure during startup leaves the
// session anonymous for this run but keeps the token for the next one;
// the cause is available from [Session.Err].
//
// All methods are safe for concurrent use. Transitions are serialised;
// readers never wait on network calls.
package session
