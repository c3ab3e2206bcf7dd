// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the backend message strings the client recognises.
//
// The EduResources backend answers errors with a FastAPI {"detail": "..."}
// body. The adapter wraps that detail together with a status sentinel; the
// service layer compares it against the Msg* constants below to pick a more
// specific error. The in-memory test backend answers with the same strings.
package app

const (
	// MsgInvalidCredentials is returned by login for an unknown email or a
	// wrong password.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgEmailNotVerified is returned by login before the account's email
	// address was confirmed.
	MsgEmailNotVerified = "Please verify your email before logging in"

	// MsgUserAlreadyExists is returned by register for a taken email.
	MsgUserAlreadyExists = "User already exists"

	// MsgEmailAlreadyVerified is returned by register and resend when the
	// address already belongs to a verified account.
	MsgEmailAlreadyVerified = "Email already registered and verified"

	// MsgNotAuthenticated is returned when no bearer token was sent.
	MsgNotAuthenticated = "Not authenticated"

	// MsgInvalidToken is returned for a bearer token that fails to verify.
	MsgInvalidToken = "Invalid token"

	// MsgInvalidOrExpiredToken is returned for an expired or revoked bearer
	// token and for an unusable password reset token.
	MsgInvalidOrExpiredToken = "Invalid or expired token"

	// MsgInvalidVerificationLink is returned by email verification for an
	// unknown or expired link.
	MsgInvalidVerificationLink = "Invalid or expired verification link"

	// MsgAdminRequired is returned by admin-only endpoints.
	MsgAdminRequired = "Admin access required"

	// MsgAdminsOnly is the shorter variant some admin endpoints use.
	MsgAdminsOnly = "Admins only"

	// MsgOldPasswordIncorrect is returned by a password change with a wrong
	// current password.
	MsgOldPasswordIncorrect = "Old password is incorrect"

	// MsgInvalidFileType is returned by photo uploads of an unsupported type.
	MsgInvalidFileType = "Invalid file type"

	// MsgFileTooLarge is returned by uploads over the size limit.
	MsgFileTooLarge = "File too large"

	// MsgFileNotFound is returned when a resource exists but its file is gone.
	MsgFileNotFound = "File not found"

	// MsgBookmarkNotFound is returned by bookmark removals.
	MsgBookmarkNotFound = "Bookmark not found"

	// MsgNotBookmarkOwner is returned when removing another user's bookmark.
	MsgNotBookmarkOwner = "Not authorized to delete this bookmark"

	// MsgInvalidResourceType is returned for an unknown bookmark type.
	MsgInvalidResourceType = "Invalid resource type"

	// MsgGoalNotFound is returned by goal updates and deletes.
	MsgGoalNotFound = "Goal not found"

	// MsgNoFieldsToUpdate is returned by updates without any field set.
	MsgNoFieldsToUpdate = "No fields to update"

	// MsgDatabaseNotConnected is the backend's answer while its database is
	// down.
	MsgDatabaseNotConnected = "Database not connected"
)
