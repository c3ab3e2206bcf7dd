// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the HTTP client wrapper around the EduResources REST
// backend.
//
// [NewHTTPServerAdapter] returns a [ServerAdapter] that holds the current
// bearer token and attaches it to every outgoing request through a resty
// request middleware. Requests issued while no token is held carry no
// Authorization header at all.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401,
// [ErrNotFound] for 404). Transport failures are returned wrapped with %w so
// the original error stays reachable.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-edu-resources/models"
)

//go:generate mockgen -destination=../mock/adapter_mock.go -package=mock github.com/MKhiriev/go-edu-resources/internal/adapter AuthAdapter,ProfileAdapter,ResourceAdapter,BookmarkAdapter,ProgressAdapter,SiteAdapter

// AuthAdapter covers the authentication endpoints and token handling.
type AuthAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// An empty token stops the Authorization header from being sent.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// Register creates an account. When the backend answers with a token it
	// is stored via SetToken; an email-verification backend answers with a
	// message only.
	Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error)

	// Login exchanges credentials for a token, stored via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Logout tells the backend the session ends. The held token is left for
	// the caller to clear.
	Logout(ctx context.Context) error

	// GetProfile returns the user owning the held token.
	GetProfile(ctx context.Context) (models.User, error)

	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, req models.EmailRequest) (string, error)
	RequestPasswordReset(ctx context.Context, req models.EmailRequest) (string, error)
	ResetPassword(ctx context.Context, req models.PasswordReset) (string, error)
}

// ProfileAdapter covers profile management of the signed in user.
type ProfileAdapter interface {
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
	UploadProfilePhoto(ctx context.Context, photo models.Photo) (models.PhotoUploadResponse, error)
	ChangePassword(ctx context.Context, change models.PasswordChange) error
}

// ResourceAdapter covers papers, notes and syllabus.
type ResourceAdapter interface {
	ListResources(ctx context.Context, kind models.ResourceKind, page models.Page) (models.ResourcePage, error)
	GetResource(ctx context.Context, kind models.ResourceKind, id string) (models.Resource, error)
	CreateResource(ctx context.Context, kind models.ResourceKind, upload models.ResourceUpload) (models.Resource, error)
	UpdateResource(ctx context.Context, kind models.ResourceKind, id string, upload models.ResourceUpload) (models.Resource, error)
	DeleteResource(ctx context.Context, kind models.ResourceKind, id string) error

	// DownloadResource streams the file as an attachment. The caller must
	// close the returned Blob's Body.
	DownloadResource(ctx context.Context, kind models.ResourceKind, id string) (models.Blob, error)

	// ViewResource streams the file for inline display. The caller must
	// close the returned Blob's Body.
	ViewResource(ctx context.Context, kind models.ResourceKind, id string) (models.Blob, error)
}

// BookmarkAdapter covers the bookmarks of the signed in user.
type BookmarkAdapter interface {
	ListBookmarks(ctx context.Context) ([]models.Bookmark, error)
	CheckBookmark(ctx context.Context, kind models.ResourceKind, resourceID string) (models.BookmarkStatus, error)
	AddBookmark(ctx context.Context, req models.BookmarkRequest) (models.Bookmark, error)
	RemoveBookmark(ctx context.Context, kind models.ResourceKind, resourceID string) error
	RemoveBookmarkByID(ctx context.Context, id string) error
}

// ProgressAdapter covers stats, achievements and learning goals.
type ProgressAdapter interface {
	GetStats(ctx context.Context) (models.Stats, error)
	ListAchievements(ctx context.Context) ([]models.Achievement, error)
	ListGoals(ctx context.Context) ([]models.Goal, error)
	CreateGoal(ctx context.Context, input models.GoalInput) (models.Goal, error)
	UpdateGoal(ctx context.Context, id string, input models.GoalInput) (models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
}

// SiteAdapter covers the admin dashboard and the public landing content.
type SiteAdapter interface {
	GetAdminDashboard(ctx context.Context) (models.AdminDashboard, error)
	GetSiteContent(ctx context.Context) (models.SiteContent, error)
}

// ServerAdapter is the full backend surface.
type ServerAdapter interface {
	AuthAdapter
	ProfileAdapter
	ResourceAdapter
	BookmarkAdapter
	ProgressAdapter
	SiteAdapter

	// BaseURL returns the normalised backend address; it keys the stored
	// token.
	BaseURL() string
}
