package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Pages of the program.
const (
	pageLoading = "loading"
	pageLogin   = "login"
	pageBrowser = "browser"
)

// sessionCheckInterval is how often the browser notices an invalidated session.
const sessionCheckInterval = 2 * time.Second

// RootModel is the router of the program:
// 1) waits for the session before showing anything
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx  context.Context
	deps Deps
	copyText func(string) error

	page    string
	login   *LoginModel
	browser *BrowserModel

	showBuildInfo bool
}

// NewRootModel returns the router in the loading page. copyText puts text on the
// clipboard.
func NewRootModel(ctx context.Context, deps Deps, copyText func(string) error) RootModel {
	return RootModel{ctx: ctx, deps: deps, copyText: copyText, page: pageLoading}
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(waitReady(r.deps.Session), tickSessionCheck())
}

func waitReady(s SessionView) tea.Cmd {
	return func() tea.Msg {
		<-s.Ready()
		return sessionReadyMsg{}
	}
}

func tickSessionCheck() tea.Cmd {
	return tea.Tick(sessionCheckInterval, func(time.Time) tea.Msg { return sessionCheckMsg{} })
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.String() == "ctrl+c":
			return r, tea.Quit
		case r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		case r.page == pageBrowser && key.String() == "i":
			r.showBuildInfo = true
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case sessionReadyMsg:
		if r.deps.Session.IsAuthenticated() {
			return r.open(pageBrowser, "")
		}
		notice := ""
		if err := r.deps.Session.Err(); err != nil {
			notice = "Could not restore the session: " + humanizeError(err)
		}
		return r.open(pageLogin, notice)
	case sessionCheckMsg:
		if r.page == pageBrowser && !r.deps.Session.IsAuthenticated() {
			var cmd tea.Cmd
			r, cmd = r.open(pageLogin, "Session expired, please sign in again")
			return r, tea.Batch(cmd, tickSessionCheck())
		}
		return r, tickSessionCheck()
	case NavigateTo:
		return r.open(msg.Page, msg.Notice)
	}

	switch r.page {
	case pageLogin:
		_, cmd := r.login.Update(msg)
		return r, cmd
	case pageBrowser:
		_, cmd := r.browser.Update(msg)
		return r, cmd
	}
	return r, nil
}

func (r RootModel) open(page, notice string) (RootModel, tea.Cmd) {
	r.page = page
	r.showBuildInfo = false

	switch page {
	case pageLogin:
		r.login = NewLoginModel(r.ctx, r.deps.Auth)
		r.login.notice = notice
		return r, r.login.Init()
	case pageBrowser:
		r.browser = NewBrowserModel(r.ctx, r.deps, r.copyText)
		r.browser.status = notice
		return r, r.browser.Init()
	}
	return r, nil
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.deps.BuildInfo))
	}

	switch r.page {
	case pageLogin:
		return appStyle.Render(r.login.View())
	case pageBrowser:
		return appStyle.Render(r.browser.View())
	}
	return appStyle.Render(renderPage("EDU RESOURCES", "Restoring session...", ""))
}
