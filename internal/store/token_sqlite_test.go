package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-edu-resources/internal/config"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServer = "http://localhost:8000"

func newTestTokenStore(t *testing.T) (*sqliteTokenStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	s := NewSQLiteTokenStore(&DB{DB: db, logger: l}, l).(*sqliteTokenStore)
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s, mock
}

// ── queries ──────────────────────────────────────────────────────────────────

func TestBuildQueries(t *testing.T) {
	query, args, err := buildSelectToken(testServer)
	require.NoError(t, err)
	assert.Equal(t, "SELECT token FROM sessions WHERE server = ? LIMIT 1", query)
	assert.Equal(t, []any{testServer}, args)

	now := time.Now()
	query, args, err = buildUpsertToken(testServer, "tok", now)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO sessions (server,token,updated_at) VALUES (?,?,?) "+
			"ON CONFLICT(server) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at",
		query)
	assert.Equal(t, []any{testServer, "tok", now.UTC()}, args)

	query, args, err = buildDeleteToken(testServer)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sessions WHERE server = ?", query)
	assert.Equal(t, []any{testServer}, args)
}

// ── LoadToken ────────────────────────────────────────────────────────────────

func TestLoadToken_Success(t *testing.T) {
	s, mock := newTestTokenStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token FROM sessions WHERE server = ?")).
		WithArgs(testServer).
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("stored-token"))

	token, err := s.LoadToken(context.Background(), testServer)
	require.NoError(t, err)
	assert.Equal(t, "stored-token", token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadToken_NotFound(t *testing.T) {
	s, mock := newTestTokenStore(t)

	mock.ExpectQuery("SELECT token FROM sessions").
		WithArgs(testServer).
		WillReturnError(sql.ErrNoRows)

	_, err := s.LoadToken(context.Background(), testServer)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestLoadToken_QueryError(t *testing.T) {
	s, mock := newTestTokenStore(t)
	dbErr := errors.New("disk I/O error")

	mock.ExpectQuery("SELECT token FROM sessions").
		WithArgs(testServer).
		WillReturnError(dbErr)

	_, err := s.LoadToken(context.Background(), testServer)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, dbErr)
}

// ── SaveToken ────────────────────────────────────────────────────────────────

func TestSaveToken_Upserts(t *testing.T) {
	s, mock := newTestTokenStore(t)

	mock.ExpectExec("INSERT INTO sessions .* ON CONFLICT\\(server\\) DO UPDATE").
		WithArgs(testServer, "new-token", s.now()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.SaveToken(context.Background(), testServer, "new-token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveToken_ExecError(t *testing.T) {
	s, mock := newTestTokenStore(t)

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("readonly database"))

	err := s.SaveToken(context.Background(), testServer, "tok")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── DeleteToken ──────────────────────────────────────────────────────────────

func TestDeleteToken_MissingRowIsFine(t *testing.T) {
	s, mock := newTestTokenStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE server = ?")).
		WithArgs(testServer).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.DeleteToken(context.Background(), testServer))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteToken_ExecError(t *testing.T) {
	s, mock := newTestTokenStore(t)

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs(testServer).
		WillReturnError(errors.New("locked"))

	assert.ErrorIs(t, s.DeleteToken(context.Background(), testServer), ErrExecutingStatement)
}

// ── real database ────────────────────────────────────────────────────────────

func TestNewTokenStore_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{
		TokenBackend: config.TokenBackendSQLite,
		DB:           config.ClientDB{DSN: filepath.Join(t.TempDir(), "nested", "client.db")},
	}

	ts, closer, err := NewTokenStore(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer closer.Close()

	_, err = ts.LoadToken(ctx, testServer)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, ts.SaveToken(ctx, testServer, "first"))
	require.NoError(t, ts.SaveToken(ctx, testServer, "second"))
	require.NoError(t, ts.SaveToken(ctx, "http://other:8000", "other"))

	token, err := ts.LoadToken(ctx, testServer)
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	require.NoError(t, ts.DeleteToken(ctx, testServer))
	require.NoError(t, ts.DeleteToken(ctx, testServer))

	_, err = ts.LoadToken(ctx, testServer)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	token, err = ts.LoadToken(ctx, "http://other:8000")
	require.NoError(t, err)
	assert.Equal(t, "other", token)
}

func TestNewTokenStore_UnknownBackend(t *testing.T) {
	_, _, err := NewTokenStore(context.Background(), config.ClientStorage{TokenBackend: "cookie"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownTokenBackend)
}
