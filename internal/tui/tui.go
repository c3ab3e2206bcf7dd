// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal browser of the client.
//
// The program shows a loading screen until the session resolves, then either
// the login form or the browser. The browser has one tab per resource kind
// plus a bookmarks tab. When the session is invalidated while browsing, for
// example by the token expiry worker, the program returns to the login form.
package tui

import (
	"context"

	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/service"
	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// SessionView is the part of the session the program reads.
type SessionView interface {
	Ready() <-chan struct{}
	IsAuthenticated() bool
	CurrentUser() (models.User, bool)
	Err() error
}

// Deps are the components the program works with.
type Deps struct {
	Session   SessionView
	Auth      service.AuthService
	Resources service.ResourceService
	Bookmarks service.BookmarkService

	BuildInfo   models.AppBuildInfo
	DownloadDir string
	Logger      *logger.Logger
}

// TUI runs the Bubble Tea program.
type TUI struct {
	deps Deps
}

// New returns a TUI over deps.
func New(deps Deps) *TUI {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	return &TUI{deps: deps}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.deps, clipboard.WriteAll)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
