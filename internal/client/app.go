package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/config"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/service"
	"github.com/MKhiriev/go-edu-resources/internal/session"
	"github.com/MKhiriev/go-edu-resources/internal/store"
	"github.com/MKhiriev/go-edu-resources/internal/validators"
	"github.com/MKhiriev/go-edu-resources/internal/workers"
	"github.com/MKhiriev/go-edu-resources/models"
)

// App holds every long-lived component of a client process.
type App struct {
	Config    *config.ClientConfig
	BuildInfo models.AppBuildInfo
	Logger    *logger.Logger

	Adapter  adapter.ServerAdapter
	Session  *session.Session
	Services *service.ClientServices
	Workers  *workers.Workers

	tokens io.Closer
}

// NewApp builds an App. The session is still loading; call Start.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	tokens, closer, err := store.NewTokenStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create token store: %w", err)
	}

	validator := validators.NewRequestValidator()
	sess := session.New(serverAdapter, tokens, serverAdapter.BaseURL(), validator, log)

	return &App{
		Config:    cfg,
		BuildInfo: buildInfo,
		Logger:    log,
		Adapter:   serverAdapter,
		Session:   sess,
		Services:  service.NewClientServices(serverAdapter, sess, validator, "", log),
		Workers:   workers.NewWorkers(workers.NewTokenExpiryWorker(sess, cfg.Workers.TokenExpiryInterval, log)),
		tokens:    closer,
	}, nil
}

// Start resolves the session from the stored token. A stored token that
// cannot be verified is not fatal: the session is anonymous and the cause
// is logged and kept in Session.Err.
func (a *App) Start(ctx context.Context) {
	if err := a.Session.Start(ctx); err != nil && !errors.Is(err, session.ErrAlreadyStarted) {
		a.Logger.Warn().Err(err).Msg("starting without a session")
	}
}

// RunWorkers runs the background workers until ctx is cancelled.
func (a *App) RunWorkers(ctx context.Context) {
	a.Workers.Run(ctx)
}

// Close releases the token store.
func (a *App) Close() error {
	if a.tokens == nil {
		return nil
	}
	return a.tokens.Close()
}
