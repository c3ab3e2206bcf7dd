package tui

import "github.com/MKhiriev/go-edu-resources/models"

// NavigateTo switches the active page. Notice is shown on the new page.
type NavigateTo struct {
	Page   string
	Notice string
}

type sessionReadyMsg struct{}

type sessionCheckMsg struct{}

type loginResultMsg struct {
	user models.User
	err  error
}

type listLoadedMsg struct {
	tab        int
	entries    []entry
	pagination models.Pagination
	err        error
}

type downloadDoneMsg struct {
	file models.DownloadedFile
	err  error
}

type viewDoneMsg struct {
	file   models.DownloadedFile
	copied bool
	err    error
}

type bookmarkToggledMsg struct {
	title      string
	bookmarked bool
	err        error
}

type logoutDoneMsg struct {
	err error
}
