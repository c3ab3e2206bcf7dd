package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/service"
	"github.com/MKhiriev/go-edu-resources/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	ready chan struct{}
	user  *models.User
	err   error
}

func newFakeSession(user *models.User) *fakeSession {
	ready := make(chan struct{})
	close(ready)
	return &fakeSession{ready: ready, user: user}
}

func (s *fakeSession) Ready() <-chan struct{} { return s.ready }
func (s *fakeSession) IsAuthenticated() bool  { return s.user != nil }
func (s *fakeSession) Err() error             { return s.err }

func (s *fakeSession) CurrentUser() (models.User, bool) {
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

type fakeAuth struct {
	session *fakeSession
	login   func(models.Credentials) (models.User, error)
	logouts int
}

func (a *fakeAuth) Login(_ context.Context, creds models.Credentials) (models.User, error) {
	user, err := a.login(creds)
	if err == nil {
		a.session.user = &user
	}
	return user, err
}

func (a *fakeAuth) Register(context.Context, models.Registration) (models.RegisterResult, error) {
	return models.RegisterResult{}, nil
}

func (a *fakeAuth) Logout(context.Context) error {
	a.logouts++
	a.session.user = nil
	return nil
}

func (a *fakeAuth) CurrentUser() (models.User, error) {
	if u, ok := a.session.CurrentUser(); ok {
		return u, nil
	}
	return models.User{}, service.ErrNotSignedIn
}

type downloadCall struct {
	kind    models.ResourceKind
	id, dir string
}

type fakeResources struct {
	items     map[models.ResourceKind][]models.Resource
	pages     []models.Page
	downloads []downloadCall
	err       error
}

func (r *fakeResources) List(_ context.Context, kind models.ResourceKind, page models.Page) (models.ResourcePage, error) {
	r.pages = append(r.pages, page)
	if r.err != nil {
		return models.ResourcePage{}, r.err
	}
	items := r.items[kind]
	return models.ResourcePage{
		Items:      items,
		Pagination: models.Pagination{Total: len(items), Skip: page.Skip, Limit: page.Limit, Returned: len(items)},
	}, nil
}

func (r *fakeResources) Get(context.Context, models.ResourceKind, string) (models.Resource, error) {
	return models.Resource{}, nil
}

func (r *fakeResources) Create(context.Context, models.ResourceKind, models.ResourceUpload) (models.Resource, error) {
	return models.Resource{}, nil
}

func (r *fakeResources) Update(context.Context, models.ResourceKind, string, models.ResourceUpload) (models.Resource, error) {
	return models.Resource{}, nil
}

func (r *fakeResources) Delete(context.Context, models.ResourceKind, string) error { return nil }

func (r *fakeResources) Download(_ context.Context, kind models.ResourceKind, id, dir string) (models.DownloadedFile, error) {
	r.downloads = append(r.downloads, downloadCall{kind: kind, id: id, dir: dir})
	if r.err != nil {
		return models.DownloadedFile{}, r.err
	}
	return models.DownloadedFile{Path: dir + "/" + id + ".pdf"}, nil
}

func (r *fakeResources) View(_ context.Context, _ models.ResourceKind, id string) (models.DownloadedFile, error) {
	if r.err != nil {
		return models.DownloadedFile{}, r.err
	}
	return models.DownloadedFile{Path: "/tmp/view-" + id + ".pdf"}, nil
}

type fakeBookmarks struct {
	marked map[string]bool
}

func (b *fakeBookmarks) List(context.Context) ([]models.Bookmark, error) {
	var out []models.Bookmark
	for id := range b.marked {
		out = append(out, models.Bookmark{ID: "bm-" + id, ResourceType: models.KindPaper, ResourceID: id, Category: models.DefaultBookmarkCategory})
	}
	return out, nil
}

func (b *fakeBookmarks) Check(_ context.Context, _ models.ResourceKind, id string) (models.BookmarkStatus, error) {
	return models.BookmarkStatus{Bookmarked: b.marked[id]}, nil
}

func (b *fakeBookmarks) Add(context.Context, models.ResourceKind, string, string) (models.Bookmark, error) {
	return models.Bookmark{}, nil
}

func (b *fakeBookmarks) Remove(context.Context, models.ResourceKind, string) error { return nil }
func (b *fakeBookmarks) RemoveByID(context.Context, string) error                  { return nil }

func (b *fakeBookmarks) Toggle(_ context.Context, _ models.ResourceKind, id string) (bool, error) {
	if b.marked[id] {
		delete(b.marked, id)
		return false, nil
	}
	b.marked[id] = true
	return true, nil
}

type fixture struct {
	session   *fakeSession
	auth      *fakeAuth
	resources *fakeResources
	bookmarks *fakeBookmarks
	copied    []string
}

func newFixture(user *models.User) *fixture {
	s := newFakeSession(user)
	return &fixture{
		session: s,
		auth: &fakeAuth{session: s, login: func(c models.Credentials) (models.User, error) {
			return models.User{Name: "Asha", Email: c.Email}, nil
		}},
		resources: &fakeResources{items: map[models.ResourceKind][]models.Resource{
			models.KindPaper: {{ID: "p1", Title: "Maths 2023"}, {ID: "p2", Title: "Physics 2022"}},
			models.KindNote:  {{ID: "n1", Title: "Thermodynamics"}},
		}},
		bookmarks: &fakeBookmarks{marked: map[string]bool{}},
	}
}

func (f *fixture) deps() Deps {
	return Deps{
		Session:     f.session,
		Auth:        f.auth,
		Resources:   f.resources,
		Bookmarks:   f.bookmarks,
		DownloadDir: "/downloads",
		Logger:      logger.Nop(),
	}
}

func (f *fixture) copy(s string) error {
	f.copied = append(f.copied, s)
	return nil
}

func (f *fixture) browser(t *testing.T) *BrowserModel {
	t.Helper()
	m := NewBrowserModel(context.Background(), f.deps(), f.copy)
	m.Update(m.load(0)())
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRoot_WaitsForSessionThenRoutes(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want string
	}{
		{name: "anonymous", want: pageLogin},
		{name: "authenticated", user: &models.User{Name: "Asha"}, want: pageBrowser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.user)
			root := NewRootModel(context.Background(), f.deps(), f.copy)
			assert.Equal(t, pageLoading, root.page)
			assert.Contains(t, root.View(), "Restoring session")

			msg := waitReady(f.session)()
			require.IsType(t, sessionReadyMsg{}, msg)

			next, _ := root.Update(msg)
			assert.Equal(t, tt.want, next.(RootModel).page)
		})
	}
}

func TestRoot_StartupFailureShownOnLogin(t *testing.T) {
	f := newFixture(nil)
	f.session.err = fmt.Errorf("profile: %w", service.ErrBackendUnavailable)
	root := NewRootModel(context.Background(), f.deps(), f.copy)

	next, _ := root.Update(sessionReadyMsg{})
	r := next.(RootModel)

	require.Equal(t, pageLogin, r.page)
	assert.Contains(t, r.login.View(), "server is unavailable")
}

func TestRoot_ExpiredSessionReturnsToLogin(t *testing.T) {
	f := newFixture(&models.User{Name: "Asha"})
	root := NewRootModel(context.Background(), f.deps(), f.copy)
	next, _ := root.Update(sessionReadyMsg{})
	root = next.(RootModel)
	require.Equal(t, pageBrowser, root.page)

	next, _ = root.Update(sessionCheckMsg{})
	assert.Equal(t, pageBrowser, next.(RootModel).page)

	f.session.user = nil
	next, _ = root.Update(sessionCheckMsg{})
	r := next.(RootModel)
	assert.Equal(t, pageLogin, r.page)
	assert.Contains(t, r.login.View(), "Session expired")
}

func TestRoot_BuildInfoWindow(t *testing.T) {
	f := newFixture(&models.User{Name: "Asha"})
	deps := f.deps()
	deps.BuildInfo = models.NewAppBuildInfo("1.2.3", "", "abc")
	root := NewRootModel(context.Background(), deps, f.copy)
	next, _ := root.Update(sessionReadyMsg{})

	next, _ = next.Update(runes("i"))
	view := next.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "N/A")

	next, _ = next.Update(runes("x"))
	assert.False(t, next.(RootModel).showBuildInfo)
}

func TestLogin_RequiresBothFields(t *testing.T) {
	f := newFixture(nil)
	m := NewLoginModel(context.Background(), f.auth)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Email and password are required")
}

func TestLogin_SuccessNavigatesToBrowser(t *testing.T) {
	f := newFixture(nil)
	m := NewLoginModel(context.Background(), f.auth)
	m.inputs[0].SetValue(" student@college.edu ")
	m.inputs[1].SetValue("student-pass")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	result := cmd()
	require.IsType(t, loginResultMsg{}, result)
	assert.Equal(t, "student@college.edu", result.(loginResultMsg).user.Email)

	_, cmd = m.Update(result)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageBrowser, Notice: "Signed in as Asha"}, cmd())
	assert.True(t, f.session.IsAuthenticated())
}

func TestLogin_FailureShowsError(t *testing.T) {
	f := newFixture(nil)
	f.auth.login = func(models.Credentials) (models.User, error) {
		return models.User{}, service.ErrInvalidCredentials
	}
	m := NewLoginModel(context.Background(), f.auth)
	m.inputs[0].SetValue("student@college.edu")
	m.inputs[1].SetValue("wrong")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd = m.Update(cmd())

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), service.ErrInvalidCredentials.Error())
}

func TestLogin_TabMovesFocus(t *testing.T) {
	m := NewLoginModel(context.Background(), newFixture(nil).auth)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focus)
}

func TestBrowser_ListsFirstTab(t *testing.T) {
	f := newFixture(&models.User{Name: "Asha"})
	m := f.browser(t)

	view := m.View()
	assert.Contains(t, view, "Maths 2023")
	assert.Contains(t, view, "Physics 2022")
	assert.Contains(t, view, "Asha")
	assert.Equal(t, []models.Page{{Skip: 0, Limit: pageSize}}, f.resources.pages)
}

func TestBrowser_SwitchTabLoadsOnce(t *testing.T) {
	f := newFixture(&models.User{Name: "Asha"})
	m := f.browser(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Contains(t, m.View(), "Thermodynamics")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Nil(t, cmd)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, cmd)
	assert.Len(t, f.resources.pages, 2)
}

func TestBrowser_DownloadSelected(t *testing.T) {
	f := newFixture(&models.User{Name: "Asha"})
	m := f.browser(t)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(runes("d"))
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	_, again := m.Update(runes("d"))
	assert.Nil(t, again)

	m.Update(cmd())
	assert.False(t, m.busy)
	assert.Equal(t, []downloadCall{{kind: models.KindPaper, id: "p2", dir: "/downloads"}}, f.resources.downloads)
	assert.Contains(t, m.View(), "Saved /downloads/p2.pdf")
}

func TestBrowser_ViewCopiesPath(t *testing.T) {
	f := newFixture(&models.User{Name: "Asha"})
	m := f.browser(t)

	_, cmd := m.Update(runes("v"))
	m.Update(cmd())

	assert.Equal(t, []string{"/tmp/view-p1.pdf"}, f.copied)
	assert.Contains(t, m.View(), "path copied to clipboard")
}

func TestBrowser_ToggleBookmarkRefreshesBookmarksTab(t *testing.T) {
	f := newFixture(&models.User{Name: "Asha"})
	m := f.browser(t)

	_, cmd := m.Update(runes("b"))
	_, reload := m.Update(cmd())
	assert.Nil(t, reload)
	assert.True(t, f.bookmarks.marked["p1"])
	assert.Contains(t, m.View(), "Bookmarked Maths 2023")

	last := len(m.tabs) - 1
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, last, m.active)
	m.Update(cmd())
	assert.Contains(t, m.View(), "p1")

	_, cmd = m.Update(runes("b"))
	_, reload = m.Update(cmd())
	require.NotNil(t, reload)
	m.Update(reload())
	assert.False(t, f.bookmarks.marked["p1"])
	assert.Contains(t, m.View(), "Nothing here yet")
}

func TestBrowser_ErrorShown(t *testing.T) {
	f := newFixture(&models.User{Name: "Asha"})
	m := f.browser(t)
	f.resources.err = fmt.Errorf("download: %w", service.ErrBackendUnavailable)

	_, cmd := m.Update(runes("d"))
	_, next := m.Update(cmd())

	assert.Nil(t, next)
	assert.Contains(t, m.View(), "server is unavailable")
}

func TestBrowser_RejectedSessionNavigatesToLogin(t *testing.T) {
	f := newFixture(&models.User{Name: "Asha"})
	m := f.browser(t)
	f.resources.err = fmt.Errorf("list: %w", service.ErrSessionExpired)

	_, cmd := m.Update(runes("r"))
	_, next := m.Update(cmd())

	require.NotNil(t, next)
	nav, ok := next().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageLogin, nav.Page)
}

func TestBrowser_Logout(t *testing.T) {
	f := newFixture(&models.User{Name: "Asha"})
	m := f.browser(t)

	_, cmd := m.Update(runes("x"))
	_, next := m.Update(cmd())

	assert.Equal(t, 1, f.auth.logouts)
	assert.False(t, f.session.IsAuthenticated())
	assert.Equal(t, NavigateTo{Page: pageLogin, Notice: "Signed out"}, next())
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "No network or the server is unreachable",
		humanizeError(errors.New("dial tcp 127.0.0.1:1: connect: connection refused")))
	assert.Equal(t, "boom", humanizeError(errors.New("boom")))
	assert.True(t, signedOut(fmt.Errorf("x: %w", service.ErrNotSignedIn)))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ab", fitText("abcdefgh", 2))
	assert.Equal(t, "Приве...", fitText("Привет мир", 8))
}
