package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-edu-resources/internal/config"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/session"
	"github.com/MKhiriev/go-edu-resources/internal/testutil"
	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend *testutil.Backend) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		App: config.ClientApp{DownloadDir: t.TempDir()},
		Adapter: config.ClientAdapter{
			HTTPAddress:    backend.URL,
			RequestTimeout: 5 * time.Second,
		},
		Storage: config.ClientStorage{
			TokenBackend: config.TokenBackendSQLite,
			DB:           config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")},
		},
		Workers: config.ClientWorkers{TokenExpiryInterval: time.Minute},
	}
}

func newTestApp(t *testing.T, cfg *config.ClientConfig) *App {
	t.Helper()
	app, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("1.0.0", "", "test"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestApp_SessionSurvivesRestart(t *testing.T) {
	backend := testutil.NewBackend(t)
	cfg := testConfig(t, backend)
	ctx := context.Background()

	first := newTestApp(t, cfg)
	first.Start(ctx)
	require.Equal(t, session.StateAnonymous, first.Session.State())

	_, err := first.Services.AuthService.Login(ctx, models.Credentials{
		Email: testutil.StudentEmail, Password: testutil.StudentPassword,
	})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := newTestApp(t, cfg)
	second.Start(ctx)

	<-second.Session.Ready()
	require.Equal(t, session.StateAuthenticated, second.Session.State())
	user, ok := second.Session.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, testutil.StudentEmail, user.Email)

	last := backend.LastRequest()
	assert.Equal(t, "/api/auth/profile", last.Path)
	assert.Equal(t, "Bearer "+second.Session.Token(), last.Authorization)
}

func TestApp_LogoutForgetsToken(t *testing.T) {
	backend := testutil.NewBackend(t)
	cfg := testConfig(t, backend)
	ctx := context.Background()

	app := newTestApp(t, cfg)
	app.Start(ctx)
	_, err := app.Services.AuthService.Login(ctx, models.Credentials{
		Email: testutil.AdminEmail, Password: testutil.AdminPassword,
	})
	require.NoError(t, err)
	assert.True(t, app.Session.IsAdmin())

	require.NoError(t, app.Services.AuthService.Logout(ctx))
	require.NoError(t, app.Close())

	again := newTestApp(t, cfg)
	again.Start(ctx)
	assert.Equal(t, session.StateAnonymous, again.Session.State())
	assert.NoError(t, again.Session.Err())
}

func TestApp_BackendDownKeepsToken(t *testing.T) {
	backend := testutil.NewBackend(t)
	cfg := testConfig(t, backend)
	ctx := context.Background()

	app := newTestApp(t, cfg)
	app.Start(ctx)
	_, err := app.Services.AuthService.Login(ctx, models.Credentials{
		Email: testutil.StudentEmail, Password: testutil.StudentPassword,
	})
	require.NoError(t, err)
	require.NoError(t, app.Close())

	backend.Fail("GET", "/api/auth/profile", 503, "Database not connected")
	down := newTestApp(t, cfg)
	down.Start(ctx)
	assert.Equal(t, session.StateAnonymous, down.Session.State())
	assert.Error(t, down.Session.Err())
	require.NoError(t, down.Close())

	backend.Recover()
	up := newTestApp(t, cfg)
	up.Start(ctx)
	assert.Equal(t, session.StateAuthenticated, up.Session.State())
}

func TestApp_InvalidAddress(t *testing.T) {
	cfg := &config.ClientConfig{Adapter: config.ClientAdapter{HTTPAddress: ""}}

	_, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	assert.Error(t, err)
}
