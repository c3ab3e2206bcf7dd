package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

// ── ParseBearerToken ─────────────────────────────────────────────────────────

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def", want: "abc.def"},
		{name: "lower case scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "extra parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── TokenExpiry / TokenSubject ───────────────────────────────────────────────

func TestTokenExpiry_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "a@b.c", "exp": exp.Unix()})

	got, err := TokenExpiry(token)
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiry_ExpiredTokenStillParses(t *testing.T) {
	exp := time.Now().Add(-time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"exp": exp.Unix()})

	got, err := TokenExpiry(token)
	require.NoError(t, err)
	assert.True(t, got.Before(time.Now()))
}

func TestTokenExpiry_NoExp(t *testing.T) {
	_, err := TokenExpiry(signedToken(t, jwt.MapClaims{"sub": "a@b.c"}))
	assert.ErrorIs(t, err, ErrNoExpiry)
}

func TestTokenExpiry_Malformed(t *testing.T) {
	_, err := TokenExpiry("not-a-jwt")
	assert.Error(t, err)
}

func TestTokenSubject(t *testing.T) {
	sub, err := TokenSubject(signedToken(t, jwt.MapClaims{"sub": "student@college.edu"}))
	require.NoError(t, err)
	assert.Equal(t, "student@college.edu", sub)
}

// ── FilenameFromDisposition ──────────────────────────────────────────────────

func TestFilenameFromDisposition(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "attachment", header: `attachment; filename="paper.pdf"`, want: "paper.pdf"},
		{name: "inline", header: `inline; filename=notes.pdf`, want: "notes.pdf"},
		{name: "rfc 5987", header: `attachment; filename*=UTF-8''syll%C3%A4bus.pdf`, want: "sylläbus.pdf"},
		{name: "path traversal", header: `attachment; filename="../../etc/passwd"`, want: "passwd"},
		{name: "windows path", header: `attachment; filename="C:\\tmp\\x.pdf"`, want: "x.pdf"},
		{name: "empty header", header: "", want: "fallback.pdf"},
		{name: "no filename", header: "attachment", want: "fallback.pdf"},
		{name: "malformed", header: `attachment; filename="`, want: "fallback.pdf"},
		{name: "dots only", header: `attachment; filename=".."`, want: "fallback.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilenameFromDisposition(tt.header, "fallback.pdf"))
		})
	}
}

// ── RequestIDGenerator ───────────────────────────────────────────────────────

func TestRequestIDGenerator_Generate(t *testing.T) {
	g := NewRequestIDGenerator()

	first := g.Generate()
	second := g.Generate()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
}

// ── HTTPClient ───────────────────────────────────────────────────────────────

func TestNewHTTPClient_SetsDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		assert.Equal(t, "edu-test/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, "edu-test/1.0")
	require.NotNil(t, client.Client)
	assert.Equal(t, time.Second, client.GetClient().Timeout)

	resp, err := client.R().Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}
