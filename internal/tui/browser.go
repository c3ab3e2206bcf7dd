package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// pageSize is the listing window of the resource tabs.
const pageSize = 20

// entry is one row of a tab.
type entry struct {
	kind       models.ResourceKind
	id         string
	title      string
	detail     string
	bookmarkID string
}

// tab is one listing of the browser. A tab without a kind lists bookmarks.
type tab struct {
	title   string
	kind    models.ResourceKind
	entries []entry
	cursor  int
	skip    int
	page    models.Pagination
	loading bool
	loaded  bool
}

func (t *tab) bookmarks() bool {
	return t.kind == ""
}

func (t *tab) current() (entry, bool) {
	if t.cursor < 0 || t.cursor >= len(t.entries) {
		return entry{}, false
	}
	return t.entries[t.cursor], true
}

// BrowserModel lists papers, notes, syllabus and bookmarks.
type BrowserModel struct {
	ctx  context.Context
	deps Deps
	copyText func(string) error

	tabs    []tab
	active  int
	spinner spinner.Model
	busy    bool
	status  string
	errMsg  string
}

// NewBrowserModel returns a browser on the papers tab.
func NewBrowserModel(ctx context.Context, deps Deps, copyText func(string) error) *BrowserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	tabs := make([]tab, 0, len(models.ResourceKinds)+1)
	for _, kind := range models.ResourceKinds {
		tabs = append(tabs, tab{title: strings.ToUpper(kind.Path()[:1]) + kind.Path()[1:], kind: kind})
	}
	tabs = append(tabs, tab{title: "Bookmarks"})

	return &BrowserModel{ctx: ctx, deps: deps, copyText: copyText, tabs: tabs, spinner: s}
}

// Init implements [tea.Model].
func (m *BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load(m.active))
}

// Update implements [tea.Model].
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case listLoadedMsg:
		t := &m.tabs[msg.tab]
		t.loading = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		t.loaded = true
		t.entries = msg.entries
		t.page = msg.pagination
		t.cursor = min(t.cursor, max(len(t.entries)-1, 0))
		return m, nil
	case downloadDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.setStatus(fmt.Sprintf("Saved %s", msg.file.Path))
		return m, nil
	case viewDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		if msg.copied {
			m.setStatus(fmt.Sprintf("Opened %s (path copied to clipboard)", msg.file.Path))
		} else {
			m.setStatus(fmt.Sprintf("Opened %s", msg.file.Path))
		}
		return m, nil
	case bookmarkToggledMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		if msg.bookmarked {
			m.setStatus("Bookmarked " + msg.title)
		} else {
			m.setStatus("Removed bookmark of " + msg.title)
		}
		return m, m.invalidateBookmarks()
	case logoutDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		return m, navigate(pageLogin, "Signed out")
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *BrowserModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	t := &m.tabs[m.active]

	switch {
	case key.Matches(msg, keys.quit):
		return tea.Quit
	case key.Matches(msg, keys.up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(msg, keys.down):
		if t.cursor < len(t.entries)-1 {
			t.cursor++
		}
	case key.Matches(msg, keys.nextTab):
		return m.switchTab((m.active + 1) % len(m.tabs))
	case key.Matches(msg, keys.prevTab):
		return m.switchTab((m.active - 1 + len(m.tabs)) % len(m.tabs))
	case key.Matches(msg, keys.nextPage):
		if !t.bookmarks() && t.page.HasMore() {
			t.skip += pageSize
			t.cursor = 0
			return m.load(m.active)
		}
	case key.Matches(msg, keys.prevPage):
		if !t.bookmarks() && t.skip > 0 {
			t.skip = max(t.skip-pageSize, 0)
			t.cursor = 0
			return m.load(m.active)
		}
	case key.Matches(msg, keys.refresh):
		return m.load(m.active)
	case key.Matches(msg, keys.download):
		return m.onCurrent(m.cmdDownload)
	case key.Matches(msg, keys.view):
		return m.onCurrent(m.cmdView)
	case key.Matches(msg, keys.bookmark):
		return m.onCurrent(m.cmdToggleBookmark)
	case key.Matches(msg, keys.logout):
		if m.busy {
			return nil
		}
		m.busy = true
		return m.cmdLogout()
	}
	return nil
}

func (m *BrowserModel) switchTab(i int) tea.Cmd {
	m.active = i
	if m.tabs[i].loaded || m.tabs[i].loading {
		return nil
	}
	return m.load(i)
}

func (m *BrowserModel) onCurrent(action func(entry) tea.Cmd) tea.Cmd {
	if m.busy {
		return nil
	}
	e, ok := m.tabs[m.active].current()
	if !ok {
		return nil
	}
	m.busy = true
	m.errMsg = ""
	return action(e)
}

func (m *BrowserModel) setStatus(s string) {
	m.status = s
	m.errMsg = ""
}

// fail shows err, or leaves for the login form when the session is gone.
func (m *BrowserModel) fail(err error) tea.Cmd {
	if signedOut(err) {
		return navigate(pageLogin, humanizeError(err))
	}
	m.deps.Logger.Debug().Err(err).Msg("browser action failed")
	m.status = ""
	m.errMsg = humanizeError(err)
	return nil
}

// invalidateBookmarks reloads the bookmarks tab if it was shown before.
func (m *BrowserModel) invalidateBookmarks() tea.Cmd {
	i := len(m.tabs) - 1
	if !m.tabs[i].loaded {
		return nil
	}
	if m.active == i {
		return m.load(i)
	}
	m.tabs[i].loaded = false
	return nil
}

func (m *BrowserModel) load(i int) tea.Cmd {
	t := &m.tabs[i]
	t.loading = true

	ctx := m.ctx
	kind, skip := t.kind, t.skip
	if t.bookmarks() {
		bookmarks := m.deps.Bookmarks
		return func() tea.Msg {
			list, err := bookmarks.List(ctx)
			entries := make([]entry, 0, len(list))
			for _, b := range list {
				title := b.Title
				if title == "" {
					title = b.ResourceID
				}
				entries = append(entries, entry{
					kind:       b.ResourceType,
					id:         b.ResourceID,
					title:      title,
					detail:     fmt.Sprintf("%s · %s", b.ResourceType, b.Category),
					bookmarkID: b.ID,
				})
			}
			return listLoadedMsg{tab: i, entries: entries, pagination: models.Pagination{Total: len(list), Returned: len(list)}, err: err}
		}
	}

	resources := m.deps.Resources
	return func() tea.Msg {
		res, err := resources.List(ctx, kind, models.Page{Skip: skip, Limit: pageSize})
		entries := make([]entry, 0, len(res.Items))
		for _, r := range res.Items {
			entries = append(entries, entry{kind: kind, id: r.ID, title: r.Title, detail: resourceDetail(r)})
		}
		return listLoadedMsg{tab: i, entries: entries, pagination: res.Pagination, err: err}
	}
}

func resourceDetail(r models.Resource) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.CourseCode, r.Branch, r.Year} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " · ")
}

func (m *BrowserModel) cmdDownload(e entry) tea.Cmd {
	ctx, resources, dir := m.ctx, m.deps.Resources, m.deps.DownloadDir
	return func() tea.Msg {
		file, err := resources.Download(ctx, e.kind, e.id, dir)
		return downloadDoneMsg{file: file, err: err}
	}
}

func (m *BrowserModel) cmdView(e entry) tea.Cmd {
	ctx, resources, copyText := m.ctx, m.deps.Resources, m.copyText
	return func() tea.Msg {
		file, err := resources.View(ctx, e.kind, e.id)
		if err != nil {
			return viewDoneMsg{err: err}
		}
		copied := copyText != nil && copyText(file.Path) == nil
		return viewDoneMsg{file: file, copied: copied}
	}
}

func (m *BrowserModel) cmdToggleBookmark(e entry) tea.Cmd {
	ctx, bookmarks := m.ctx, m.deps.Bookmarks
	return func() tea.Msg {
		on, err := bookmarks.Toggle(ctx, e.kind, e.id)
		return bookmarkToggledMsg{title: e.title, bookmarked: on, err: err}
	}
}

func (m *BrowserModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.deps.Auth
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

// View implements [tea.Model].
func (m *BrowserModel) View() string {
	var b strings.Builder

	tabs := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(t.title))
		} else {
			tabs = append(tabs, tabStyle.Render(t.title))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	t := m.tabs[m.active]
	switch {
	case t.loading && !t.loaded:
		b.WriteString(m.spinner.View() + " Loading...\n")
	case len(t.entries) == 0:
		b.WriteString("Nothing here yet\n")
	default:
		for i, e := range t.entries {
			line := fmt.Sprintf("%-48s %s", fitText(e.title, 48), helpStyle.Render(e.detail))
			if i == t.cursor {
				b.WriteString(cursorStyle.Render("> ") + line + "\n")
			} else {
				b.WriteString("  " + line + "\n")
			}
		}
		if !t.bookmarks() && t.page.Total > 0 {
			fmt.Fprintf(&b, "\n%d-%d of %d", t.page.Skip+1, t.page.Skip+t.page.Returned, t.page.Total)
			b.WriteString("\n")
		}
	}

	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " Working...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	title := "EDU RESOURCES"
	if user, ok := m.deps.Session.CurrentUser(); ok {
		title += " · " + user.Name
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: switch │ d: download │ v: view │ b: bookmark │ n/p: page │ r: refresh │ x: logout │ i: about │ q: quit")
}
