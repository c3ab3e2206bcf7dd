package session

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/mock"
	"github.com/MKhiriev/go-edu-resources/internal/store"
	"github.com/MKhiriev/go-edu-resources/internal/validators"
	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testServer = "http://edu.test"

func newTestSession(t *testing.T) (*Session, *mock.MockAuthAdapter, *mock.MockTokenStore) {
	t.Helper()
	ctrl := gomock.NewController(t)

	auth := mock.NewMockAuthAdapter(ctrl)
	tokens := mock.NewMockTokenStore(ctrl)

	return New(auth, tokens, testServer, validators.NewRequestValidator(), logger.Nop()), auth, tokens
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "student@college.edu",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// authenticated drives s into StateAuthenticated through Start.
func authenticated(t *testing.T, s *Session, auth *mock.MockAuthAdapter, tokens *mock.MockTokenStore, token string, user models.User) {
	t.Helper()
	tokens.EXPECT().LoadToken(gomock.Any(), testServer).Return(token, nil)
	auth.EXPECT().SetToken(token)
	auth.EXPECT().GetProfile(gomock.Any()).Return(user, nil)
	require.NoError(t, s.Start(context.Background()))
	require.Equal(t, StateAuthenticated, s.State())
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

var student = models.User{ID: "u-1", Name: "Asha Student", Email: "student@college.edu", Role: "student"}

// ── Start ────────────────────────────────────────────────────────────────────

func TestSession_Start_NoToken(t *testing.T) {
	s, _, tokens := newTestSession(t)
	require.Equal(t, StateLoading, s.State())
	require.False(t, isClosed(s.Ready()))

	tokens.EXPECT().LoadToken(gomock.Any(), testServer).Return("", store.ErrTokenNotFound)

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
	assert.True(t, isClosed(s.Ready()))
	assert.NoError(t, s.Err())

	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

func TestSession_Start_ValidToken(t *testing.T) {
	s, auth, tokens := newTestSession(t)

	authenticated(t, s, auth, tokens, "stored-token", student)

	user, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, student, user)
	assert.Equal(t, "stored-token", s.Token())
	assert.False(t, s.IsAdmin())
	assert.True(t, isClosed(s.Ready()))
}

func TestSession_Start_RejectedTokenIsDeleted(t *testing.T) {
	for _, status := range []error{adapter.ErrUnauthorized, adapter.ErrForbidden} {
		t.Run(status.Error(), func(t *testing.T) {
			s, auth, tokens := newTestSession(t)
			backendErr := errors.Join(status, errors.New("Could not validate credentials"))

			gomock.InOrder(
				tokens.EXPECT().LoadToken(gomock.Any(), testServer).Return("stale", nil),
				auth.EXPECT().SetToken("stale"),
				auth.EXPECT().GetProfile(gomock.Any()).Return(models.User{}, backendErr),
				auth.EXPECT().SetToken(""),
				tokens.EXPECT().DeleteToken(gomock.Any(), testServer).Return(nil),
			)

			err := s.Start(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrProfileFetch)
			assert.ErrorIs(t, s.Err(), status)
			assert.Equal(t, StateAnonymous, s.State())
			assert.Empty(t, s.Token())
		})
	}
}

func TestSession_Start_TransientFailureKeepsToken(t *testing.T) {
	failures := map[string]error{
		"network": &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
		"5xx":     adapter.ErrInternalServerError,
		"gateway": adapter.ErrBadGateway,
	}

	for name, failure := range failures {
		t.Run(name, func(t *testing.T) {
			s, auth, tokens := newTestSession(t)

			// DeleteToken has no expectation: a call fails the test.
			tokens.EXPECT().LoadToken(gomock.Any(), testServer).Return("kept", nil)
			auth.EXPECT().SetToken("kept")
			auth.EXPECT().GetProfile(gomock.Any()).Return(models.User{}, failure)
			auth.EXPECT().SetToken("")

			err := s.Start(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, s.Err(), failure)
			assert.Equal(t, StateAnonymous, s.State())
			assert.True(t, isClosed(s.Ready()))
		})
	}
}

func TestSession_Start_StoreFailure(t *testing.T) {
	s, _, tokens := newTestSession(t)
	tokens.EXPECT().LoadToken(gomock.Any(), testServer).Return("", errors.New("database is locked"))

	err := s.Start(context.Background())
	require.ErrorIs(t, err, ErrTokenStore)
	assert.Equal(t, StateAnonymous, s.State())
	assert.ErrorIs(t, s.Err(), ErrTokenStore)
}

func TestSession_Start_Twice(t *testing.T) {
	s, _, tokens := newTestSession(t)
	tokens.EXPECT().LoadToken(gomock.Any(), testServer).Return("", store.ErrTokenNotFound)

	require.NoError(t, s.Start(context.Background()))
	assert.ErrorIs(t, s.Start(context.Background()), ErrAlreadyStarted)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestSession_Login_PersistsTokenAndUser(t *testing.T) {
	s, auth, tokens := newTestSession(t)
	creds := models.Credentials{Email: "student@college.edu", Password: "student-pass"}
	payload := student
	payload.Semester = "5"

	gomock.InOrder(
		auth.EXPECT().Login(gomock.Any(), creds).Return(models.AuthResponse{
			AccessToken: "fresh", TokenType: "bearer", User: &payload,
		}, nil),
		auth.EXPECT().SetToken("fresh"),
		tokens.EXPECT().SaveToken(gomock.Any(), testServer, "fresh").Return(nil),
	)

	user, err := s.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, payload, user)

	current, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, payload, current)
	assert.Equal(t, "fresh", s.Token())
	assert.True(t, s.IsAuthenticated())
	assert.True(t, isClosed(s.Ready()))
}

func TestSession_Login_OverwritesPreviousUser(t *testing.T) {
	s, auth, tokens := newTestSession(t)
	authenticated(t, s, auth, tokens, "old", student)

	admin := models.User{ID: "u-2", Email: "admin@college.edu", Role: models.RoleAdmin}
	auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{AccessToken: "new", User: &admin}, nil)
	auth.EXPECT().SetToken("new")
	tokens.EXPECT().SaveToken(gomock.Any(), testServer, "new").Return(nil)

	_, err := s.Login(context.Background(), models.Credentials{Email: "admin@college.edu", Password: "admin-pass"})
	require.NoError(t, err)

	current, _ := s.CurrentUser()
	assert.Equal(t, admin, current)
	assert.True(t, s.IsAdmin())
}

func TestSession_Login_FetchesProfileWithoutUser(t *testing.T) {
	s, auth, tokens := newTestSession(t)

	auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{AccessToken: "fresh"}, nil)
	auth.EXPECT().SetToken("fresh")
	auth.EXPECT().GetProfile(gomock.Any()).Return(student, nil)
	tokens.EXPECT().SaveToken(gomock.Any(), testServer, "fresh").Return(nil)

	user, err := s.Login(context.Background(), models.Credentials{Email: "student@college.edu", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, student, user)
}

func TestSession_Login_InvalidInput(t *testing.T) {
	s, _, _ := newTestSession(t)

	_, err := s.Login(context.Background(), models.Credentials{Email: "not-an-email"})
	require.ErrorIs(t, err, validators.ErrInvalidInput)
	assert.Equal(t, StateLoading, s.State())
}

func TestSession_Login_BackendError(t *testing.T) {
	s, auth, tokens := newTestSession(t)
	authenticated(t, s, auth, tokens, "old", student)

	auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, adapter.ErrUnauthorized)
	auth.EXPECT().SetToken("old")

	_, err := s.Login(context.Background(), models.Credentials{Email: "student@college.edu", Password: "wrong"})
	require.ErrorIs(t, err, adapter.ErrUnauthorized)

	current, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, student, current)
	assert.Equal(t, "old", s.Token())
}

func TestSession_Login_PersistFailure(t *testing.T) {
	s, auth, tokens := newTestSession(t)

	auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{AccessToken: "fresh", User: &student}, nil)
	auth.EXPECT().SetToken("fresh")
	tokens.EXPECT().SaveToken(gomock.Any(), testServer, "fresh").Return(errors.New("disk full"))
	auth.EXPECT().SetToken("")

	_, err := s.Login(context.Background(), models.Credentials{Email: "student@college.edu", Password: "x"})
	require.ErrorIs(t, err, ErrTokenStore)
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestSession_Register_Immediate(t *testing.T) {
	s, auth, tokens := newTestSession(t)
	reg := models.Registration{Name: "New Student", Email: "new@college.edu", Password: "secret1"}
	created := models.User{ID: "u-9", Name: reg.Name, Email: reg.Email}

	auth.EXPECT().Register(gomock.Any(), reg).Return(models.AuthResponse{Token: "tok", UserID: "u-9", Message: "User registered successfully"}, nil)
	auth.EXPECT().SetToken("tok")
	auth.EXPECT().GetProfile(gomock.Any()).Return(created, nil)
	tokens.EXPECT().SaveToken(gomock.Any(), testServer, "tok").Return(nil)

	res, err := s.Register(context.Background(), reg)
	require.NoError(t, err)
	assert.False(t, res.VerificationPending)
	require.NotNil(t, res.User)
	assert.Equal(t, created, *res.User)
	assert.Equal(t, "User registered successfully", res.Message)
	assert.True(t, s.IsAuthenticated())
}

func TestSession_Register_VerificationPending(t *testing.T) {
	s, auth, _ := newTestSession(t)
	reg := models.Registration{Name: "New Student", Email: "new@college.edu", Password: "secret1"}

	auth.EXPECT().Register(gomock.Any(), reg).Return(models.AuthResponse{Message: "Check your email"}, nil)
	auth.EXPECT().SetToken("")

	res, err := s.Register(context.Background(), reg)
	require.NoError(t, err)
	assert.True(t, res.VerificationPending)
	assert.Nil(t, res.User)
	assert.Equal(t, StateAnonymous, s.State())
	assert.True(t, isClosed(s.Ready()))
}

func TestSession_Register_InvalidInput(t *testing.T) {
	s, _, _ := newTestSession(t)

	_, err := s.Register(context.Background(), models.Registration{Name: "x", Email: "new@college.edu", Password: "123"})
	require.ErrorIs(t, err, validators.ErrInvalidInput)
	assert.Contains(t, err.Error(), "password")
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestSession_Logout_ClearsStateWhenBackendFails(t *testing.T) {
	s, auth, tokens := newTestSession(t)
	authenticated(t, s, auth, tokens, "tok", student)

	gomock.InOrder(
		auth.EXPECT().Logout(gomock.Any()).Return(errors.New("connection reset")),
		auth.EXPECT().SetToken(""),
		tokens.EXPECT().DeleteToken(gomock.Any(), testServer).Return(nil),
	)

	require.NoError(t, s.Logout(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
	assert.Empty(t, s.Token())
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

func TestSession_Logout_Success(t *testing.T) {
	s, auth, tokens := newTestSession(t)
	authenticated(t, s, auth, tokens, "tok", student)

	auth.EXPECT().Logout(gomock.Any()).Return(nil)
	auth.EXPECT().SetToken("")
	tokens.EXPECT().DeleteToken(gomock.Any(), testServer).Return(nil)

	require.NoError(t, s.Logout(context.Background()))
	assert.False(t, s.IsAuthenticated())
}

func TestSession_Logout_Anonymous(t *testing.T) {
	s, auth, tokens := newTestSession(t)

	// no backend call without a token
	auth.EXPECT().SetToken("")
	tokens.EXPECT().DeleteToken(gomock.Any(), testServer).Return(nil)

	require.NoError(t, s.Logout(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
}

func TestSession_Logout_StoreFailure(t *testing.T) {
	s, auth, tokens := newTestSession(t)
	authenticated(t, s, auth, tokens, "tok", student)

	auth.EXPECT().Logout(gomock.Any()).Return(nil)
	auth.EXPECT().SetToken("")
	tokens.EXPECT().DeleteToken(gomock.Any(), testServer).Return(errors.New("readonly database"))

	err := s.Logout(context.Background())
	require.ErrorIs(t, err, ErrTokenStore)
	assert.False(t, s.IsAuthenticated())
}

// ── user updates and expiry ──────────────────────────────────────────────────

func TestSession_SetUser(t *testing.T) {
	s, auth, tokens := newTestSession(t)
	assert.ErrorIs(t, s.SetUser(student), ErrNotAuthenticated)

	authenticated(t, s, auth, tokens, "tok", student)

	promoted := models.User{ID: student.ID, Email: student.Email, IsAdmin: true}
	require.NoError(t, s.SetUser(promoted))

	current, _ := s.CurrentUser()
	assert.Equal(t, promoted, current)
	assert.True(t, s.IsAdmin())
}

func TestSession_Refresh_RejectedInvalidates(t *testing.T) {
	s, auth, tokens := newTestSession(t)
	authenticated(t, s, auth, tokens, "tok", student)

	auth.EXPECT().GetProfile(gomock.Any()).Return(models.User{}, adapter.ErrUnauthorized)
	auth.EXPECT().SetToken("")
	tokens.EXPECT().DeleteToken(gomock.Any(), testServer).Return(nil)

	_, err := s.Refresh(context.Background())
	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, StateAnonymous, s.State())
	assert.ErrorIs(t, s.Err(), ErrInvalidated)
}

func TestSession_Refresh_UpdatesUser(t *testing.T) {
	s, auth, tokens := newTestSession(t)
	authenticated(t, s, auth, tokens, "tok", student)

	renamed := student
	renamed.Name = "Asha S."
	auth.EXPECT().GetProfile(gomock.Any()).Return(renamed, nil)

	user, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, renamed, user)

	current, _ := s.CurrentUser()
	assert.Equal(t, "Asha S.", current.Name)
}

func TestSession_Refresh_RejectedStoreFailureIsReturned(t *testing.T) {
	s, auth, tokens := newTestSession(t)
	authenticated(t, s, auth, tokens, "tok", student)

	auth.EXPECT().GetProfile(gomock.Any()).Return(models.User{}, adapter.ErrUnauthorized)
	auth.EXPECT().SetToken("")
	tokens.EXPECT().DeleteToken(gomock.Any(), testServer).Return(errors.New("keyring locked"))

	_, err := s.Refresh(context.Background())
	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.ErrorIs(t, err, ErrTokenStore)
	assert.Contains(t, err.Error(), "keyring locked")
	assert.Equal(t, StateAnonymous, s.State())
}

func TestSession_Refresh_SwitchWaitsForProfileFetch(t *testing.T) {
	s, auth, tokens := newTestSession(t)
	authenticated(t, s, auth, tokens, "old", student)
	ctx := context.Background()

	admin := models.User{ID: "u-2", Email: "admin@college.edu", Role: models.RoleAdmin}
	fetching := make(chan struct{})
	release := make(chan struct{})

	auth.EXPECT().GetProfile(gomock.Any()).DoAndReturn(func(context.Context) (models.User, error) {
		close(fetching)
		<-release
		return student, nil
	})
	gomock.InOrder(
		auth.EXPECT().Logout(gomock.Any()).Return(nil),
		auth.EXPECT().SetToken(""),
		tokens.EXPECT().DeleteToken(gomock.Any(), testServer).Return(nil),
		auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{AccessToken: "new", User: &admin}, nil),
		auth.EXPECT().SetToken("new"),
		tokens.EXPECT().SaveToken(gomock.Any(), testServer, "new").Return(nil),
	)

	refreshed := make(chan error, 1)
	go func() {
		_, err := s.Refresh(ctx)
		refreshed <- err
	}()
	<-fetching

	switched := make(chan error, 1)
	go func() {
		if err := s.Logout(ctx); err != nil {
			switched <- err
			return
		}
		_, err := s.Login(ctx, models.Credentials{Email: "admin@college.edu", Password: "admin-pass"})
		switched <- err
	}()

	select {
	case <-switched:
		t.Fatal("account switch finished while the profile fetch was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-refreshed)
	require.NoError(t, <-switched)

	// the stale profile must not overwrite the account signed in afterwards
	current, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, admin, current)
	assert.Equal(t, "new", s.Token())
}

func TestSession_ExpireIfStale(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid token", func(t *testing.T) {
		s, auth, tokens := newTestSession(t)
		authenticated(t, s, auth, tokens, signedToken(t, now.Add(time.Hour)), student)

		expired, err := s.ExpireIfStale(context.Background(), now)
		require.NoError(t, err)
		assert.False(t, expired)
		assert.True(t, s.IsAuthenticated())
	})

	t.Run("expired token", func(t *testing.T) {
		s, auth, tokens := newTestSession(t)
		authenticated(t, s, auth, tokens, signedToken(t, now.Add(-time.Minute)), student)

		auth.EXPECT().SetToken("")
		tokens.EXPECT().DeleteToken(gomock.Any(), testServer).Return(nil)

		expired, err := s.ExpireIfStale(context.Background(), now)
		require.NoError(t, err)
		assert.True(t, expired)
		assert.Equal(t, StateAnonymous, s.State())
	})

	t.Run("opaque token", func(t *testing.T) {
		s, auth, tokens := newTestSession(t)
		authenticated(t, s, auth, tokens, "opaque", student)

		expired, err := s.ExpireIfStale(context.Background(), now)
		require.NoError(t, err)
		assert.False(t, expired)
	})

	t.Run("anonymous", func(t *testing.T) {
		s, _, _ := newTestSession(t)

		expired, err := s.ExpireIfStale(context.Background(), now)
		require.NoError(t, err)
		assert.False(t, expired)
	})
}

func TestSession_ConcurrentReaders(t *testing.T) {
	s, auth, tokens := newTestSession(t)

	auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{AccessToken: "tok", User: &student}, nil)
	auth.EXPECT().SetToken("tok")
	tokens.EXPECT().SaveToken(gomock.Any(), testServer, "tok").Return(nil)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = s.IsAdmin()
				_, _ = s.CurrentUser()
				_ = s.State().String()
			}
		}()
	}

	_, err := s.Login(context.Background(), models.Credentials{Email: "student@college.edu", Password: "x"})
	require.NoError(t, err)
	wg.Wait()

	assert.True(t, s.IsAuthenticated())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
	assert.Equal(t, "anonymous", StateAnonymous.String())
	assert.Equal(t, "unknown", State(42).String())
}
