// Package testutil provides an in-memory EduResources backend for tests.
//
// [NewBackend] starts an httptest server routed with chi that implements the
// REST surface the client consumes. Every request is recorded so tests can
// assert on the headers the client sent.
package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-edu-resources/internal/app"
	"github.com/MKhiriev/go-edu-resources/internal/utils"
	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const signKey = "testutil-secret"

// Fixture credentials seeded into every Backend.
const (
	StudentEmail    = "student@college.edu"
	StudentPassword = "student-pass"
	AdminEmail      = "admin@college.edu"
	AdminPassword   = "admin-pass"
)

// RecordedRequest is what the backend saw of one request.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
	UserAgent     string
	ContentType   string
}

type account struct {
	password string
	user     models.User
}

type failure struct {
	status int
	detail string
}

// Backend is a fake EduResources server.
type Backend struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []RecordedRequest
	accounts  map[string]*account
	revoked   map[string]bool
	resources map[models.ResourceKind][]models.Resource
	files     map[string][]byte
	bookmarks []models.Bookmark
	goals     []models.Goal
	failures  map[string]failure

	// VerifyOnRegister makes register answer with a message instead of a
	// token, like a backend requiring email verification.
	VerifyOnRegister bool

	// TokenTTL is the lifetime of issued tokens.
	TokenTTL time.Duration
}

// NewBackend starts a Backend seeded with a student, an admin and one
// resource of every kind. It is closed when the test ends.
func NewBackend(t testing.TB) *Backend {
	t.Helper()

	b := &Backend{
		accounts:  make(map[string]*account),
		revoked:   make(map[string]bool),
		resources: make(map[models.ResourceKind][]models.Resource),
		files:     make(map[string][]byte),
		failures:  make(map[string]failure),
		TokenTTL:  time.Hour,
	}
	b.seed()
	b.Server = httptest.NewServer(b.routes())
	t.Cleanup(b.Close)

	return b
}

func (b *Backend) seed() {
	b.accounts[StudentEmail] = &account{
		password: StudentPassword,
		user: models.User{
			ID: "u-student", Name: "Asha Student", Email: StudentEmail,
			USN: "1RV22CS001", Course: "CSE", Semester: "5", Role: "student", Verified: true,
		},
	}
	b.accounts[AdminEmail] = &account{
		password: AdminPassword,
		user: models.User{
			ID: "u-admin", Name: "Ravi Admin", Email: AdminEmail, Role: models.RoleAdmin, Verified: true,
		},
	}

	now := models.Timestamp{Time: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	for _, kind := range models.ResourceKinds {
		id := kind.String() + "-1"
		b.resources[kind] = []models.Resource{{
			ID: id, Title: "Sample " + kind.String(), Filename: id + ".pdf",
			Authors: []string{"A. Author"}, Tags: []string{"sample"},
			CreatedAt: now, UpdatedAt: now,
		}}
		b.files[fileKey(kind, id)] = []byte("%PDF-1.4 " + id)
	}
}

// Requests returns a copy of every request recorded so far.
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]RecordedRequest(nil), b.requests...)
}

// LastRequest returns the most recent request, or the zero value.
func (b *Backend) LastRequest() RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return RecordedRequest{}
	}
	return b.requests[len(b.requests)-1]
}

// Fail makes every request to method and path answer status with detail
// until Recover is called.
func (b *Backend) Fail(method, path string, status int, detail string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = failure{status: status, detail: detail}
}

// Recover clears every failure set by Fail.
func (b *Backend) Recover() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.failures)
}

// IssueToken returns a valid token for email.
func (b *Backend) IssueToken(email string) string {
	return b.issueToken(email, time.Now().Add(b.TokenTTL))
}

// ExpiredToken returns a token for email that expired an hour ago.
func (b *Backend) ExpiredToken(email string) string {
	return b.issueToken(email, time.Now().Add(-time.Hour))
}

func (b *Backend) issueToken(email string, exp time.Time) string {
	claims := jwt.MapClaims{"sub": email, "exp": exp.Unix(), "jti": uuid.NewString()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		panic(err)
	}
	return token
}

// AddResource stores r with file content under kind and returns it.
func (b *Backend) AddResource(kind models.ResourceKind, r models.Resource, content []byte) models.Resource {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	b.resources[kind] = append(b.resources[kind], r)
	b.files[fileKey(kind, r.ID)] = content
	return r
}

// Bookmarks returns a copy of the stored bookmarks.
func (b *Backend) Bookmarks() []models.Bookmark {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Bookmark(nil), b.bookmarks...)
}

func fileKey(kind models.ResourceKind, id string) string {
	return kind.String() + "/" + id
}

func (b *Backend) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(b.record, b.injectFailures)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", b.register)
		r.Post("/login", b.login)
		r.Get("/verify/{token}", b.verify)
		r.Post("/resend-verification", b.message("Verification email resent successfully."))
		r.Post("/forgot-password", b.message("If the email exists, a reset link was sent."))
		r.Post("/reset-password", b.message("Password reset successfully"))

		r.Group(func(r chi.Router) {
			r.Use(b.authenticate)
			r.Post("/logout", b.logout)
			r.Get("/profile", b.getProfile)
			r.Put("/profile", b.updateProfile)
			r.Post("/profile/photo", b.uploadPhoto)
			r.Put("/profile/password", b.changePassword)
		})
	})

	for _, kind := range models.ResourceKinds {
		r.Route("/api/"+kind.Path(), func(r chi.Router) {
			r.Get("/", b.listResources(kind))
			r.Get("/{id}", b.getResource(kind))
			r.Get("/{id}/download", b.serveFile(kind, "attachment"))
			r.Get("/{id}/view", b.serveFile(kind, "inline"))
			r.Group(func(r chi.Router) {
				r.Use(b.authenticate, b.requireAdmin)
				r.Post("/", b.createResource(kind))
				r.Put("/{id}", b.updateResource(kind))
				r.Delete("/{id}", b.deleteResource(kind))
			})
		})
	}

	r.Get("/api/stats/", b.stats)
	r.Get("/api/cms/content", b.siteContent)
	r.With(b.authenticate).Get("/api/admin/dashboard", b.adminDashboard)

	r.Group(func(r chi.Router) {
		r.Use(b.authenticate)
		r.Get("/api/bookmarks/", b.listBookmarks)
		r.Get("/api/bookmarks/check/{type}/{id}", b.checkBookmark)
		r.Post("/api/bookmarks/", b.addBookmark)
		r.Delete("/api/bookmarks/{type}/{id}", b.removeBookmark)
		r.Delete("/api/bookmarks/id/{id}", b.removeBookmarkByID)

		r.Get("/api/achievements/", b.achievements)
		r.Get("/api/goals/", b.listGoals)
		r.Post("/api/goals/", b.createGoal)
		r.Put("/api/goals/{id}", b.updateGoal)
		r.Delete("/api/goals/{id}", b.deleteGoal)
	})

	return r
}

// ── middlewares ──────────────────────────────────────────────────────────────

type ctxKey struct{}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			UserAgent:     r.Header.Get("User-Agent"),
			ContentType:   r.Header.Get("Content-Type"),
		})
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		f, ok := b.failures[r.Method+" "+r.URL.Path]
		b.mu.Unlock()
		if ok {
			writeDetail(w, f.status, f.detail)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, app.MsgNotAuthenticated)
			return
		}

		token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return []byte(signKey), nil })
		if err != nil || !token.Valid {
			writeDetail(w, http.StatusUnauthorized, app.MsgInvalidOrExpiredToken)
			return
		}
		email, _ := token.Claims.GetSubject()

		b.mu.Lock()
		acc, ok := b.accounts[email]
		revoked := b.revoked[raw]
		b.mu.Unlock()
		if !ok || revoked {
			writeDetail(w, http.StatusUnauthorized, app.MsgInvalidToken)
			return
		}

		ctx := r.Context()
		next.ServeHTTP(w, r.WithContext(contextWithAccount(ctx, acc, raw)))
	})
}

func (b *Backend) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acc, _ := accountFrom(r)
		if acc == nil || !acc.user.Admin() {
			writeDetail(w, http.StatusForbidden, app.MsgAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ── auth ─────────────────────────────────────────────────────────────────────

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	b.mu.Lock()
	if _, exists := b.accounts[reg.Email]; exists {
		b.mu.Unlock()
		writeDetail(w, http.StatusBadRequest, app.MsgUserAlreadyExists)
		return
	}
	user := models.User{
		ID: uuid.NewString(), Name: reg.Name, Email: reg.Email,
		USN: reg.USN, Course: reg.Course, Semester: reg.Semester,
		Role: "student", Verified: !b.VerifyOnRegister,
	}
	b.accounts[reg.Email] = &account{password: reg.Password, user: user}
	verify := b.VerifyOnRegister
	b.mu.Unlock()

	if verify {
		writeJSON(w, http.StatusOK, models.MessageResponse{
			Message: "Verification email sent successfully. Please verify to complete registration.",
		})
		return
	}

	writeJSON(w, http.StatusOK, models.AuthResponse{Token: b.IssueToken(reg.Email), UserID: user.ID})
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	b.mu.Lock()
	acc, ok := b.accounts[creds.Email]
	b.mu.Unlock()
	if !ok || acc.password != creds.Password {
		writeDetail(w, http.StatusUnauthorized, app.MsgInvalidCredentials)
		return
	}
	if !acc.user.Verified {
		writeDetail(w, http.StatusForbidden, app.MsgEmailNotVerified)
		return
	}

	user := acc.user
	user.IsAdmin = user.Admin()
	writeJSON(w, http.StatusOK, models.AuthResponse{
		AccessToken: b.IssueToken(creds.Email),
		TokenType:   "bearer",
		User:        &user,
	})
}

func (b *Backend) verify(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "token") == "bad" {
		writeDetail(w, http.StatusBadRequest, app.MsgInvalidVerificationLink)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	_, _ = io.WriteString(w, "<html><body>Email verified</body></html>")
}

func (b *Backend) message(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		writeJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: text})
	}
}

func (b *Backend) logout(w http.ResponseWriter, r *http.Request) {
	_, raw := accountFrom(r)
	b.mu.Lock()
	b.revoked[raw] = true
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Logged out"})
}

func (b *Backend) getProfile(w http.ResponseWriter, r *http.Request) {
	acc, _ := accountFrom(r)
	b.mu.Lock()
	user := acc.user
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, models.Envelope[models.User]{Success: true, Data: user})
}

func (b *Backend) updateProfile(w http.ResponseWriter, r *http.Request) {
	acc, _ := accountFrom(r)
	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	b.mu.Lock()
	if update.Name != "" {
		acc.user.Name = update.Name
	}
	if update.USN != "" {
		acc.user.USN = update.USN
	}
	if update.Course != "" {
		acc.user.Course = update.Course
	}
	if update.Semester != "" {
		acc.user.Semester = update.Semester
	}
	user := acc.user
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, models.Envelope[models.User]{Success: true, Message: "Profile updated", Data: user})
}

func (b *Backend) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	acc, _ := accountFrom(r)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "file is required")
		return
	}
	defer file.Close()

	switch header.Header.Get("Content-Type") {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
	default:
		writeDetail(w, http.StatusBadRequest, app.MsgInvalidFileType)
		return
	}

	url := "/uploads/profile_photos/" + uuid.NewString() + ".jpg"
	b.mu.Lock()
	acc.user.ProfilePhoto = url
	user := acc.user
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, models.PhotoUploadResponse{
		Success: true, Message: "Profile photo uploaded successfully", PhotoURL: url, Profile: &user,
	})
}

func (b *Backend) changePassword(w http.ResponseWriter, r *http.Request) {
	acc, _ := accountFrom(r)
	var change models.PasswordChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if acc.password != change.OldPassword {
		writeDetail(w, http.StatusBadRequest, app.MsgOldPasswordIncorrect)
		return
	}
	acc.password = change.NewPassword
	writeJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Password updated successfully"})
}

// ── resources ────────────────────────────────────────────────────────────────

func (b *Backend) listResources(kind models.ResourceKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		limit := 20
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, _ = strconv.Atoi(raw)
		}
		if skip < 0 || limit < 1 || limit > 100 {
			writeDetail(w, http.StatusUnprocessableEntity, "invalid pagination")
			return
		}

		b.mu.Lock()
		all := b.resources[kind]
		total := len(all)
		start := min(skip, total)
		end := min(start+limit, total)
		page := append([]models.Resource{}, all[start:end]...)
		b.mu.Unlock()

		writeJSON(w, http.StatusOK, models.ListEnvelope[models.Resource]{
			Success: true,
			Data:    page,
			Pagination: models.Pagination{
				Total: total, Skip: skip, Limit: limit, Returned: len(page),
			},
		})
	}
}

func (b *Backend) findResource(kind models.ResourceKind, id string) (int, bool) {
	for i, res := range b.resources[kind] {
		if res.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (b *Backend) getResource(kind models.ResourceKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		i, ok := b.findResource(kind, chi.URLParam(r, "id"))
		var res models.Resource
		if ok {
			res = b.resources[kind][i]
		}
		b.mu.Unlock()

		if !ok {
			writeDetail(w, http.StatusNotFound, capitalize(kind.String())+" not found")
			return
		}
		writeJSON(w, http.StatusOK, models.Envelope[models.Resource]{Success: true, Data: res})
	}
}

func (b *Backend) serveFile(kind models.ResourceKind, disposition string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		b.mu.Lock()
		i, ok := b.findResource(kind, id)
		var (
			res     models.Resource
			content []byte
		)
		if ok {
			b.resources[kind][i].DownloadCount++
			res = b.resources[kind][i]
			content = b.files[fileKey(kind, id)]
		}
		b.mu.Unlock()

		if !ok {
			writeDetail(w, http.StatusNotFound, capitalize(kind.String())+" not found")
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		if res.Filename != "" {
			w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, res.Filename))
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(content)))
		_, _ = w.Write(content)
	}
}

func resourceFromForm(r *http.Request, res *models.Resource) {
	set := func(field string, dst *string) {
		if v := r.FormValue(field); v != "" {
			*dst = v
		}
	}
	set("title", &res.Title)
	set("description", &res.Description)
	set("abstract", &res.Abstract)
	set("course_code", &res.CourseCode)
	set("branch", &res.Branch)
	set("year", &res.Year)
	if v := r.FormValue("authors"); v != "" {
		res.Authors = strings.Split(v, ",")
	}
	if v := r.FormValue("tags"); v != "" {
		res.Tags = strings.Split(v, ",")
	}
}

func (b *Backend) createResource(kind models.ResourceKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "multipart form expected")
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil || r.FormValue("title") == "" {
			writeDetail(w, http.StatusUnprocessableEntity, "title and file are required")
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)

		now := models.Timestamp{Time: time.Now().UTC()}
		res := models.Resource{ID: uuid.NewString(), Filename: header.Filename, CreatedAt: now, UpdatedAt: now}
		resourceFromForm(r, &res)

		b.mu.Lock()
		b.resources[kind] = append(b.resources[kind], res)
		b.files[fileKey(kind, res.ID)] = content
		b.mu.Unlock()

		writeJSON(w, http.StatusOK, models.Envelope[models.Resource]{
			Success: true, Message: capitalize(kind.String()) + " created successfully", Data: res,
		})
	}
}

func (b *Backend) updateResource(kind models.ResourceKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "multipart form expected")
			return
		}
		id := chi.URLParam(r, "id")

		b.mu.Lock()
		defer b.mu.Unlock()
		i, ok := b.findResource(kind, id)
		if !ok {
			writeDetail(w, http.StatusNotFound, capitalize(kind.String())+" not found")
			return
		}

		res := &b.resources[kind][i]
		resourceFromForm(r, res)
		if file, header, err := r.FormFile("file"); err == nil {
			content, _ := io.ReadAll(file)
			_ = file.Close()
			res.Filename = header.Filename
			b.files[fileKey(kind, id)] = content
		}
		res.UpdatedAt = models.Timestamp{Time: time.Now().UTC()}

		writeJSON(w, http.StatusOK, models.MessageResponse{
			Success: true, Message: capitalize(kind.String()) + " updated successfully",
		})
	}
}

func (b *Backend) deleteResource(kind models.ResourceKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		b.mu.Lock()
		defer b.mu.Unlock()
		i, ok := b.findResource(kind, id)
		if !ok {
			writeDetail(w, http.StatusNotFound, capitalize(kind.String())+" not found")
			return
		}
		b.resources[kind] = append(b.resources[kind][:i], b.resources[kind][i+1:]...)
		delete(b.files, fileKey(kind, id))

		writeJSON(w, http.StatusOK, models.MessageResponse{
			Success: true, Message: capitalize(kind.String()) + " deleted successfully",
		})
	}
}

func (b *Backend) stats(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	stats := models.Stats{
		TotalUsers:     len(b.accounts),
		TotalPapers:    len(b.resources[models.KindPaper]),
		TotalNotes:     len(b.resources[models.KindNote]),
		TotalSyllabus:  len(b.resources[models.KindSyllabus]),
		TotalBookmarks: len(b.bookmarks),
	}
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, models.StatsEnvelope{Success: true, Stats: stats})
}

// SiteContent is what the fake serves on the landing content endpoint.
var SiteContent = models.SiteContent{
	WelcomeMessage: "Welcome to EduResources CMS!",
	LatestNews: []models.NewsItem{
		{ID: 1, Title: "Semester begins soon", Content: "Get ready for the new semester."},
		{ID: 2, Title: "Holiday Schedule", Content: "Check the official holiday calendar."},
	},
	ContactInfo: models.ContactInfo{Email: "support@eduresources.com", Phone: "+1-234-567-890"},
}

func (b *Backend) siteContent(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.Envelope[models.SiteContent]{Success: true, Data: SiteContent})
}

// adminDashboard answers with a bare body, unlike most endpoints.
func (b *Backend) adminDashboard(w http.ResponseWriter, r *http.Request) {
	acc, _ := accountFrom(r)
	if acc == nil || !acc.user.Admin() {
		writeDetail(w, http.StatusForbidden, app.MsgAdminsOnly)
		return
	}

	b.mu.Lock()
	var stats models.DashboardStats
	for _, a := range b.accounts {
		stats.TotalUsers++
		if a.user.Admin() {
			stats.TotalAdmins++
		}
		if a.user.Role == "student" {
			stats.TotalStudents++
		}
	}
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, models.AdminDashboard{Message: "Welcome Admin " + acc.user.Name, Stats: stats})
}

// ── bookmarks ────────────────────────────────────────────────────────────────

func (b *Backend) listBookmarks(w http.ResponseWriter, r *http.Request) {
	acc, _ := accountFrom(r)
	b.mu.Lock()
	out := make([]models.Bookmark, 0)
	for _, bm := range b.bookmarks {
		if bm.UserEmail == acc.user.Email {
			out = append(out, bm)
		}
	}
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, models.Envelope[[]models.Bookmark]{Success: true, Data: out})
}

func (b *Backend) findBookmark(email string, kind models.ResourceKind, resourceID string) (int, bool) {
	for i, bm := range b.bookmarks {
		if bm.UserEmail == email && bm.ResourceType == kind && bm.ResourceID == resourceID {
			return i, true
		}
	}
	return -1, false
}

func validBookmarkType(raw string) (models.ResourceKind, bool) {
	kind := models.ResourceKind(raw)
	return kind, kind.Valid()
}

func (b *Backend) checkBookmark(w http.ResponseWriter, r *http.Request) {
	acc, _ := accountFrom(r)
	kind, ok := validBookmarkType(chi.URLParam(r, "type"))
	if !ok {
		writeDetail(w, http.StatusBadRequest, app.MsgInvalidResourceType)
		return
	}

	b.mu.Lock()
	i, found := b.findBookmark(acc.user.Email, kind, chi.URLParam(r, "id"))
	status := models.BookmarkStatus{Bookmarked: found}
	if found {
		status.BookmarkID = b.bookmarks[i].ID
	}
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, models.BookmarkCheckResponse{Success: true, BookmarkStatus: status})
}

func (b *Backend) addBookmark(w http.ResponseWriter, r *http.Request) {
	acc, _ := accountFrom(r)
	var req models.BookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	if !req.ResourceType.Valid() {
		writeDetail(w, http.StatusBadRequest, "Invalid resource type. Must be: paper, note, or syllabus")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if i, found := b.findBookmark(acc.user.Email, req.ResourceType, req.ResourceID); found {
		writeJSON(w, http.StatusOK, models.Envelope[models.Bookmark]{
			Success: true, Message: "Bookmark already exists", Data: b.bookmarks[i],
		})
		return
	}
	if _, found := b.findResource(req.ResourceType, req.ResourceID); !found {
		writeDetail(w, http.StatusNotFound, capitalize(req.ResourceType.String())+" not found")
		return
	}

	category := req.Category
	if category == "" {
		category = models.DefaultBookmarkCategory
	}
	bm := models.Bookmark{
		ID: uuid.NewString(), UserEmail: acc.user.Email,
		ResourceType: req.ResourceType, ResourceID: req.ResourceID,
		Category: category, CreatedAt: models.Timestamp{Time: time.Now().UTC()},
	}
	b.bookmarks = append(b.bookmarks, bm)

	writeJSON(w, http.StatusOK, models.Envelope[models.Bookmark]{
		Success: true, Message: "Bookmark created successfully", Data: bm,
	})
}

func (b *Backend) removeBookmark(w http.ResponseWriter, r *http.Request) {
	acc, _ := accountFrom(r)
	kind, ok := validBookmarkType(chi.URLParam(r, "type"))
	if !ok {
		writeDetail(w, http.StatusBadRequest, app.MsgInvalidResourceType)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i, found := b.findBookmark(acc.user.Email, kind, chi.URLParam(r, "id"))
	if !found {
		writeDetail(w, http.StatusNotFound, app.MsgBookmarkNotFound)
		return
	}
	b.bookmarks = append(b.bookmarks[:i], b.bookmarks[i+1:]...)

	writeJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Bookmark removed successfully"})
}

func (b *Backend) removeBookmarkByID(w http.ResponseWriter, r *http.Request) {
	acc, _ := accountFrom(r)
	id := chi.URLParam(r, "id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, bm := range b.bookmarks {
		if bm.ID != id {
			continue
		}
		if bm.UserEmail != acc.user.Email {
			writeDetail(w, http.StatusForbidden, app.MsgNotBookmarkOwner)
			return
		}
		b.bookmarks = append(b.bookmarks[:i], b.bookmarks[i+1:]...)
		writeJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Bookmark removed successfully"})
		return
	}

	writeDetail(w, http.StatusNotFound, app.MsgBookmarkNotFound)
}

// ── progress ─────────────────────────────────────────────────────────────────

func (b *Backend) achievements(w http.ResponseWriter, r *http.Request) {
	acc, _ := accountFrom(r)
	b.mu.Lock()
	count := 0
	for _, bm := range b.bookmarks {
		if bm.UserEmail == acc.user.Email {
			count++
		}
	}
	b.mu.Unlock()

	list := []models.Achievement{{
		ID: "first-bookmark", Title: "Collector", Description: "Bookmark your first resource",
		Category: "bookmarks", Progress: min(count, 1), Target: 1, Unlocked: count >= 1,
	}}
	writeJSON(w, http.StatusOK, models.Envelope[[]models.Achievement]{Success: true, Data: list})
}

func (b *Backend) listGoals(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	out := append([]models.Goal{}, b.goals...)
	b.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt.Time) })

	writeJSON(w, http.StatusOK, models.Envelope[[]models.Goal]{Success: true, Data: out})
}

func applyGoalInput(g *models.Goal, in models.GoalInput) {
	if in.Title != "" {
		g.Title = in.Title
	}
	if in.Description != "" {
		g.Description = in.Description
	}
	if in.TargetDate != "" {
		g.TargetDate = in.TargetDate
	}
	if in.Progress != nil {
		g.Progress = *in.Progress
	}
	if in.Completed != nil {
		g.Completed = *in.Completed
	}
}

func (b *Backend) createGoal(w http.ResponseWriter, r *http.Request) {
	var in models.GoalInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Title == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "title is required")
		return
	}

	now := models.Timestamp{Time: time.Now().UTC()}
	g := models.Goal{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	applyGoalInput(&g, in)

	b.mu.Lock()
	b.goals = append(b.goals, g)
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, models.Envelope[models.Goal]{Success: true, Data: g})
}

func (b *Backend) updateGoal(w http.ResponseWriter, r *http.Request) {
	var in models.GoalInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.goals {
		if b.goals[i].ID == chi.URLParam(r, "id") {
			applyGoalInput(&b.goals[i], in)
			b.goals[i].UpdatedAt = models.Timestamp{Time: time.Now().UTC()}
			writeJSON(w, http.StatusOK, models.Envelope[models.Goal]{Success: true, Data: b.goals[i]})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, app.MsgGoalNotFound)
}

func (b *Backend) deleteGoal(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.goals {
		if b.goals[i].ID == chi.URLParam(r, "id") {
			b.goals = append(b.goals[:i], b.goals[i+1:]...)
			writeJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Goal deleted"})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, app.MsgGoalNotFound)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
