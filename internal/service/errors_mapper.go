// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/app"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/models"
)

// mapAdapterError translates an adapter error into a service error. The
// adapter error stays in the chain so callers can still match the status
// sentinel.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	wrap := func(target error) error {
		return fmt.Errorf("%w: %w", target, err)
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case hasDetail(err, app.MsgUserAlreadyExists), hasDetail(err, app.MsgEmailAlreadyVerified):
			return wrap(ErrAccountExists)
		case hasDetail(err, app.MsgOldPasswordIncorrect):
			return wrap(ErrWrongPassword)
		case hasDetail(err, app.MsgInvalidVerificationLink), hasDetail(err, app.MsgInvalidOrExpiredToken):
			return wrap(ErrInvalidLink)
		case hasDetail(err, app.MsgInvalidFileType):
			return wrap(ErrUnsupportedPhoto)
		case hasDetail(err, app.MsgFileTooLarge):
			return wrap(ErrFileTooLarge)
		case hasDetail(err, app.MsgNoFieldsToUpdate):
			return wrap(ErrNothingToUpdate)
		}
		return wrap(ErrRejectedInput)

	case errors.Is(err, adapter.ErrUnauthorized):
		if hasDetail(err, app.MsgInvalidCredentials) {
			return wrap(ErrInvalidCredentials)
		}
		return wrap(ErrSessionExpired)

	case errors.Is(err, adapter.ErrForbidden):
		switch {
		case hasDetail(err, app.MsgEmailNotVerified):
			return wrap(ErrEmailNotVerified)
		case hasDetail(err, app.MsgAdminRequired), hasDetail(err, app.MsgAdminsOnly):
			return wrap(ErrAdminOnly)
		}
		return wrap(ErrPermissionDenied)

	case errors.Is(err, adapter.ErrNotFound):
		switch {
		case hasDetail(err, app.MsgBookmarkNotFound):
			return wrap(ErrBookmarkNotFound)
		case hasDetail(err, app.MsgGoalNotFound):
			return wrap(ErrGoalNotFound)
		case hasDetail(err, app.MsgFileNotFound):
			return wrap(ErrFileNotFound)
		}
		return wrap(ErrNotFound)

	case errors.Is(err, adapter.ErrTooLarge):
		return wrap(ErrFileTooLarge)

	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrInternalServerError):
		return wrap(ErrBackendUnavailable)
	}

	return err
}

// hasDetail reports whether the backend detail wrapped into err is msg.
// The adapter always puts the detail last.
func hasDetail(err error, msg string) bool {
	return strings.HasSuffix(err.Error(), ": "+msg)
}

// guard is embedded by the services that act on behalf of the signed in
// user.
type guard struct {
	session AuthState
	logger  *logger.Logger
}

// fail maps err and invalidates the session when the backend rejected its
// token.
func (g guard) fail(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) && g.session.IsAuthenticated() {
		if ierr := g.session.Invalidate(ctx); ierr != nil {
			g.logger.Err(ierr).Msg("failed to invalidate session")
		}
	}
	return mapAdapterError(err)
}

// requireAdmin refuses locally what the backend would refuse anyway.
func (g guard) requireAdmin() error {
	if !g.session.IsAuthenticated() {
		return ErrNotSignedIn
	}
	if !g.session.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}

// syncUser overwrites the session user after a call returned a fresh one.
func (g guard) syncUser(user models.User) {
	if err := g.session.SetUser(user); err != nil {
		g.logger.Debug().Err(err).Msg("session user not updated")
	}
}
