package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/store"
	"github.com/MKhiriev/go-edu-resources/internal/utils"
	"github.com/MKhiriev/go-edu-resources/internal/validators"
	"github.com/MKhiriev/go-edu-resources/models"
)

// Session is the auth state holder shared by every front-end component.
type Session struct {
	auth      adapter.AuthAdapter
	tokens    store.TokenStore
	server    string
	validator validators.Validator
	logger    *logger.Logger

	// opMu serialises transitions; mu guards the fields below it.
	opMu sync.Mutex

	mu    sync.RWMutex
	state State
	user  *models.User
	token string
	err   error

	ready     chan struct{}
	readyOnce sync.Once
}

// New returns a Session in [StateLoading]. server keys the token in tokens;
// it is normally the adapter's base URL.
func New(auth adapter.AuthAdapter, tokens store.TokenStore, server string, validator validators.Validator, log *logger.Logger) *Session {
	return &Session{
		auth:      auth,
		tokens:    tokens,
		server:    server,
		validator: validator,
		logger:    log,
		state:     StateLoading,
		ready:     make(chan struct{}),
	}
}

// Start resolves the Loading state. Without a stored token the session
// becomes anonymous. With one, the profile is fetched once: success
// authenticates, any failure leaves the session anonymous. There is no
// retry.
//
// The returned error is the cause of an anonymous outcome, also available
// from Err; a missing token is not an error.
func (s *Session) Start(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if s.State() != StateLoading {
		return ErrAlreadyStarted
	}

	token, err := s.tokens.LoadToken(ctx, s.server)
	if errors.Is(err, store.ErrTokenNotFound) {
		s.logger.Debug().Str("server", s.server).Msg("no stored token, starting anonymous")
		s.becomeAnonymous(nil)
		return nil
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrTokenStore, err)
		s.logger.Err(err).Msg("failed to read stored token")
		s.becomeAnonymous(err)
		return err
	}

	if sub, subErr := utils.TokenSubject(token); subErr == nil {
		s.logger.Debug().Str("subject", sub).Msg("verifying stored token")
	}
	s.auth.SetToken(token)
	user, err := s.auth.GetProfile(ctx)
	if err != nil {
		s.auth.SetToken("")
		if rejected(err) {
			s.logger.Info().Err(err).Msg("stored token rejected, deleting it")
			s.deleteStoredToken(ctx)
		} else {
			s.logger.Warn().Err(err).Msg("could not verify stored token, keeping it")
		}

		err = fmt.Errorf("%w: %w", ErrProfileFetch, err)
		s.becomeAnonymous(err)
		return err
	}

	s.becomeAuthenticated(token, user)
	s.logger.Info().Str("email", user.Email).Msg("session restored")
	return nil
}

// Login validates creds, authenticates against the backend, persists the
// token and replaces the current user with the one from the response. The
// profile is fetched when the response carries no user. On any failure the
// previous state is kept.
func (s *Session) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := s.validator.Validate(ctx, creds); err != nil {
		return models.User{}, err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	resp, err := s.auth.Login(ctx, creds)
	if err != nil {
		s.restoreAdapterToken()
		return models.User{}, err
	}

	return s.establish(ctx, resp)
}

// Register validates reg and creates the account. When the backend issues a
// token the session is established exactly like Login. When it only sends
// a verification message the session stays anonymous and the result
// reports VerificationPending.
func (s *Session) Register(ctx context.Context, reg models.Registration) (models.RegisterResult, error) {
	if err := s.validator.Validate(ctx, reg); err != nil {
		return models.RegisterResult{}, err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	resp, err := s.auth.Register(ctx, reg)
	if err != nil {
		s.restoreAdapterToken()
		return models.RegisterResult{}, err
	}

	if resp.BearerToken() == "" {
		s.restoreAdapterToken()
		if s.State() == StateLoading {
			s.becomeAnonymous(nil)
		}
		return models.RegisterResult{VerificationPending: true, Message: resp.Message}, nil
	}

	user, err := s.establish(ctx, resp)
	if err != nil {
		return models.RegisterResult{}, err
	}
	return models.RegisterResult{User: &user, Message: resp.Message}, nil
}

// establish finishes Login and Register. Callers hold opMu.
func (s *Session) establish(ctx context.Context, resp models.AuthResponse) (models.User, error) {
	token := resp.BearerToken()
	s.auth.SetToken(token)

	var user models.User
	if resp.User != nil {
		user = *resp.User
	} else {
		profile, err := s.auth.GetProfile(ctx)
		if err != nil {
			s.restoreAdapterToken()
			return models.User{}, fmt.Errorf("%w: %w", ErrProfileFetch, err)
		}
		user = profile
	}

	if err := s.tokens.SaveToken(ctx, s.server, token); err != nil {
		s.restoreAdapterToken()
		err = fmt.Errorf("%w: %w", ErrTokenStore, err)
		s.logger.Err(err).Msg("failed to persist token")
		return models.User{}, err
	}

	s.becomeAuthenticated(token, user)
	s.logger.Info().Str("email", user.Email).Msg("signed in")
	return user, nil
}

// Logout tells the backend, best effort, and then clears the user and the
// token from the adapter and the store whatever the backend answered. Only
// a store failure is returned.
func (s *Session) Logout(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if s.Token() != "" {
		if err := s.auth.Logout(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("backend logout failed, clearing local session anyway")
		}
	}

	return s.clear(ctx, nil)
}

// Invalidate drops the session after the backend rejected its token.
func (s *Session) Invalidate(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if s.State() != StateAuthenticated {
		return nil
	}
	s.logger.Info().Msg("session invalidated")
	return s.clear(ctx, ErrInvalidated)
}

// ExpireIfStale invalidates the session when the exp claim of its token is
// not after now. Opaque tokens without a readable expiry are left alone.
func (s *Session) ExpireIfStale(ctx context.Context, now time.Time) (bool, error) {
	token := s.Token()
	if token == "" || s.State() != StateAuthenticated {
		return false, nil
	}

	exp, err := utils.TokenExpiry(token)
	if err != nil {
		return false, nil
	}
	if now.Before(exp) {
		return false, nil
	}

	s.logger.Info().Time("exp", exp).Msg("token expired")
	return true, s.Invalidate(ctx)
}

// Refresh fetches the profile and replaces the current user with it. A
// rejected token invalidates the session; a store failure while clearing it
// is joined into the returned error. Refresh holds opMu so a Logout or Login
// cannot land between the fetch and the update.
func (s *Session) Refresh(ctx context.Context) (models.User, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if !s.IsAuthenticated() {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := s.auth.GetProfile(ctx)
	if err != nil {
		if rejected(err) {
			s.logger.Info().Err(err).Msg("profile refresh rejected, session invalidated")
			if clearErr := s.clear(ctx, ErrInvalidated); clearErr != nil {
				return models.User{}, errors.Join(err, clearErr)
			}
		}
		return models.User{}, err
	}

	return user, s.SetUser(user)
}

// SetUser replaces the current user wholesale, e.g. after a profile update.
func (s *Session) SetUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated {
		return ErrNotAuthenticated
	}
	s.user = &user
	return nil
}

// Ready returns a channel closed once the Loading state resolved.
func (s *Session) Ready() <-chan struct{} {
	return s.ready
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// CurrentUser returns a copy of the signed in user.
func (s *Session) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// IsAdmin is derived from the current user on every call.
func (s *Session) IsAdmin() bool {
	user, ok := s.CurrentUser()
	return ok && user.Admin()
}

// Token returns the bearer token of the session, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Server returns the address the token is stored under.
func (s *Session) Server() string {
	return s.server
}

// Err returns the cause of the last anonymous outcome, or nil.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Session) clear(ctx context.Context, cause error) error {
	s.auth.SetToken("")
	s.becomeAnonymous(cause)

	if err := s.tokens.DeleteToken(ctx, s.server); err != nil {
		err = fmt.Errorf("%w: %w", ErrTokenStore, err)
		s.logger.Err(err).Msg("failed to delete stored token")
		return err
	}
	return nil
}

func (s *Session) deleteStoredToken(ctx context.Context) {
	if err := s.tokens.DeleteToken(ctx, s.server); err != nil {
		s.logger.Err(err).Msg("failed to delete rejected token")
	}
}

// restoreAdapterToken puts the session's own token back on the adapter after
// a failed attempt replaced it.
func (s *Session) restoreAdapterToken() {
	s.auth.SetToken(s.Token())
}

func (s *Session) becomeAuthenticated(token string, user models.User) {
	s.mu.Lock()
	s.state = StateAuthenticated
	s.token = token
	s.user = &user
	s.err = nil
	s.mu.Unlock()

	s.markReady()
}

func (s *Session) becomeAnonymous(cause error) {
	s.mu.Lock()
	s.state = StateAnonymous
	s.token = ""
	s.user = nil
	s.err = cause
	s.mu.Unlock()

	s.markReady()
}

func (s *Session) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

func rejected(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrForbidden)
}
