package service

import "errors"

var (
	ErrNotSignedIn        = errors.New("not signed in")
	ErrAdminOnly          = errors.New("administrator rights required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email address not verified")
	ErrSessionExpired     = errors.New("session expired, sign in again")
	ErrAccountExists      = errors.New("account already exists")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInvalidLink        = errors.New("invalid or expired link")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrRejectedInput      = errors.New("rejected by backend")
	ErrNothingToUpdate    = errors.New("nothing to update")
	ErrBackendUnavailable = errors.New("backend unavailable")

	ErrNotFound         = errors.New("not found")
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrFileNotFound     = errors.New("file not found on backend")

	ErrUnsupportedPhoto = errors.New("unsupported photo type")
	ErrFileTooLarge     = errors.New("file too large")

	ErrSavingFile = errors.New("error saving file")
)
