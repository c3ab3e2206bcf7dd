package models

import (
	"fmt"
	"io"
	"strings"
)

// ResourceKind names a collection of study materials served by the backend.
type ResourceKind string

const (
	KindPaper    ResourceKind = "paper"
	KindNote     ResourceKind = "note"
	KindSyllabus ResourceKind = "syllabus"
)

// ResourceKinds lists every supported kind in display order.
var ResourceKinds = []ResourceKind{KindPaper, KindNote, KindSyllabus}

// ParseResourceKind accepts the singular, the plural and the path form of a
// kind ("paper", "papers", "notes", "syllabi", ...).
func ParseResourceKind(s string) (ResourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paper", "papers":
		return KindPaper, nil
	case "note", "notes":
		return KindNote, nil
	case "syllabus", "syllabi":
		return KindSyllabus, nil
	default:
		return "", fmt.Errorf("unknown resource kind %q", s)
	}
}

// Path returns the URL segment of the kind's collection.
func (k ResourceKind) Path() string {
	switch k {
	case KindPaper:
		return "papers"
	case KindNote:
		return "notes"
	default:
		return string(k)
	}
}

// Valid reports whether k is one of [ResourceKinds].
func (k ResourceKind) Valid() bool {
	for _, kind := range ResourceKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// String implements [fmt.Stringer].
func (k ResourceKind) String() string {
	return string(k)
}

// Resource is a question paper, a note or a syllabus. The backend stores the
// three kinds in separate collections with a shared shape; fields that do not
// apply to a kind are left empty.
type Resource struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Filename      string    `json:"filename,omitempty"`
	Description   string    `json:"description,omitempty"`
	Abstract      string    `json:"abstract,omitempty"`
	Authors       []string  `json:"authors,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	CourseCode    string    `json:"course_code,omitempty"`
	Branch        string    `json:"branch,omitempty"`
	Year          string    `json:"year,omitempty"`
	DownloadCount int       `json:"download_count"`
	CreatedAt     Timestamp `json:"created_at"`
	UpdatedAt     Timestamp `json:"updated_at"`

	// Kind is filled in by the client; the backend does not echo it.
	Kind ResourceKind `json:"-"`
}

// Page selects a window of a listing.
type Page struct {
	Skip  int `validate:"min=0"`
	Limit int `validate:"min=0,max=100"`
}

// Pagination describes the window returned by a listing endpoint.
type Pagination struct {
	Total    int `json:"total"`
	Skip     int `json:"skip"`
	Limit    int `json:"limit"`
	Returned int `json:"returned"`
}

// HasMore reports whether further items exist after this window.
func (p Pagination) HasMore() bool {
	return p.Skip+p.Returned < p.Total
}

// ResourcePage is one window of a resource listing.
type ResourcePage struct {
	Items      []Resource
	Pagination Pagination
}

// ResourceUpload carries the multipart form of a resource create or update
// request. On update every empty field is left unchanged by the backend, and
// File may be nil.
type ResourceUpload struct {
	Title       string   `validate:"required_without=Update,max=300"`
	Description string   `validate:"omitempty,max=5000"`
	Abstract    string   `validate:"omitempty,max=5000"`
	Authors     []string `validate:"omitempty,dive,required"`
	Tags        []string `validate:"omitempty,dive,required"`
	CourseCode  string
	Branch      string
	Year        string

	// FileName is the name the uploaded file is sent under.
	FileName string `validate:"required_with=File"`

	// File is the content of the resource document.
	File io.Reader `validate:"required_without=Update"`

	// Update marks the form as a partial update.
	Update bool
}

// FormData returns the text fields of the form that are set.
func (u ResourceUpload) FormData() map[string]string {
	form := make(map[string]string)
	set := func(key, value string) {
		if value != "" {
			form[key] = value
		}
	}

	set("title", u.Title)
	set("description", u.Description)
	set("abstract", u.Abstract)
	set("authors", strings.Join(u.Authors, ","))
	set("tags", strings.Join(u.Tags, ","))
	set("course_code", u.CourseCode)
	set("branch", u.Branch)
	set("year", u.Year)

	return form
}

// BlobInfo describes a file streamed from a download or view endpoint.
type BlobInfo struct {
	Filename    string
	ContentType string
	Size        int64
}

// DownloadedFile is a blob saved to the local filesystem.
type DownloadedFile struct {
	BlobInfo
	Path string
}

// Blob is a streamed file body. The receiver must close Body.
type Blob struct {
	BlobInfo
	Body io.ReadCloser
}
