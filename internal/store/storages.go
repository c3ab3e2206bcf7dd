package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-edu-resources/internal/config"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewTokenStore builds the token store selected by cfg.TokenBackend. For the
// SQLite backend it opens the database and runs pending migrations. The
// returned closer releases the database and must be called on shutdown.
func NewTokenStore(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (TokenStore, io.Closer, error) {
	logger.Info().Str("backend", cfg.TokenBackend).Msg("creating token store...")

	switch cfg.TokenBackend {
	case config.TokenBackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migration failed: %w", err)
		}

		return NewSQLiteTokenStore(db, logger), db, nil
	case config.TokenBackendKeyring:
		return NewKeyringTokenStore(cfg.Keyring.Service, logger), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownTokenBackend, cfg.TokenBackend)
	}
}
