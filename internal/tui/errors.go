// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-edu-resources/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrBackendUnavailable):
		return "The server is unavailable, try again later"
	case errors.Is(err, service.ErrSessionExpired), errors.Is(err, service.ErrNotSignedIn):
		return "Session expired, please sign in again"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unreachable"
	}

	return err.Error()
}

// signedOut reports whether err means the session is gone.
func signedOut(err error) bool {
	return errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrNotSignedIn)
}
