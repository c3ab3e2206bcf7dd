// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client-side use cases on top of the server
// adapter and the session.
//
// Services validate their input before any request, refuse admin-only
// operations locally when the current user is not an administrator, and map
// adapter errors to the errors declared in this package while keeping the
// adapter error in the chain. A rejected token invalidates the session.
package service

import (
	"context"

	"github.com/MKhiriev/go-edu-resources/models"
)

// AuthState is the part of the session the services read and update.
type AuthState interface {
	IsAuthenticated() bool
	IsAdmin() bool
	CurrentUser() (models.User, bool)
	SetUser(user models.User) error
	Invalidate(ctx context.Context) error
}

// Authenticator moves the session between its states.
type Authenticator interface {
	AuthState
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	Register(ctx context.Context, reg models.Registration) (models.RegisterResult, error)
	Logout(ctx context.Context) error
}

// AuthService signs the user in and out.
type AuthService interface {
	// Login authenticates and replaces the current user with the response
	// payload. Wrong credentials yield ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Register creates an account. The result reports whether the backend
	// asked for email verification before the first login.
	Register(ctx context.Context, reg models.Registration) (models.RegisterResult, error)

	// Logout clears the local session whatever the backend answers.
	Logout(ctx context.Context) error

	// CurrentUser returns the signed in user, or ErrNotSignedIn.
	CurrentUser() (models.User, error)
}

// AccountService covers the email verification and password reset flows.
// None of them needs a signed in user.
type AccountService interface {
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, reset models.PasswordReset) (string, error)
}

// ResourceService browses and manages papers, notes and syllabus.
type ResourceService interface {
	// List returns one page of kind. A zero limit selects DefaultPageSize,
	// larger limits are clamped to MaxPageSize.
	List(ctx context.Context, kind models.ResourceKind, page models.Page) (models.ResourcePage, error)
	Get(ctx context.Context, kind models.ResourceKind, id string) (models.Resource, error)

	// Create, Update and Delete need an administrator; they fail with
	// ErrAdminOnly before any request otherwise.
	Create(ctx context.Context, kind models.ResourceKind, upload models.ResourceUpload) (models.Resource, error)
	Update(ctx context.Context, kind models.ResourceKind, id string, upload models.ResourceUpload) (models.Resource, error)
	Delete(ctx context.Context, kind models.ResourceKind, id string) error

	// Download saves the file into dir under the name the backend sent.
	Download(ctx context.Context, kind models.ResourceKind, id, dir string) (models.DownloadedFile, error)

	// View saves the inline rendition into a fresh temporary file for an
	// external viewer. The caller owns the file.
	View(ctx context.Context, kind models.ResourceKind, id string) (models.DownloadedFile, error)
}

// BookmarkService manages the current user's bookmarks.
type BookmarkService interface {
	List(ctx context.Context) ([]models.Bookmark, error)
	Check(ctx context.Context, kind models.ResourceKind, id string) (models.BookmarkStatus, error)

	// Add bookmarks a resource; an empty category selects
	// models.DefaultBookmarkCategory.
	Add(ctx context.Context, kind models.ResourceKind, id, category string) (models.Bookmark, error)
	Remove(ctx context.Context, kind models.ResourceKind, id string) error
	RemoveByID(ctx context.Context, bookmarkID string) error

	// Toggle adds the bookmark when missing and removes it otherwise. It
	// returns whether the resource is bookmarked afterwards.
	Toggle(ctx context.Context, kind models.ResourceKind, id string) (bool, error)
}

// ProfileService reads and edits the current user's profile. Every
// successful call that returns a user overwrites the session user with it.
type ProfileService interface {
	Get(ctx context.Context) (models.User, error)
	Update(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	// UploadPhoto checks type and size locally before uploading.
	UploadPhoto(ctx context.Context, photo models.Photo) (models.PhotoUploadResponse, error)

	// UploadPhotoFile opens path, detects its content type and uploads it.
	UploadPhotoFile(ctx context.Context, path string) (models.PhotoUploadResponse, error)

	ChangePassword(ctx context.Context, change models.PasswordChange) error
}

// ProgressService exposes stats, achievements and learning goals.
type ProgressService interface {
	Stats(ctx context.Context) (models.Stats, error)
	Achievements(ctx context.Context) ([]models.Achievement, error)
	Goals(ctx context.Context) ([]models.Goal, error)
	CreateGoal(ctx context.Context, input models.GoalInput) (models.Goal, error)
	UpdateGoal(ctx context.Context, id string, input models.GoalInput) (models.Goal, error)

	// CompleteGoal marks a goal completed with full progress.
	CompleteGoal(ctx context.Context, id string) (models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
}

// SiteService reads the admin dashboard and the public landing content.
type SiteService interface {
	// Dashboard needs an administrator and fails with ErrAdminOnly before
	// any request otherwise.
	Dashboard(ctx context.Context) (models.AdminDashboard, error)

	// Content needs no signed in user.
	Content(ctx context.Context) (models.SiteContent, error)
}
