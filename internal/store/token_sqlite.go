package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-edu-resources/internal/logger"
)

type sqliteTokenStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteTokenStore returns a [TokenStore] backed by the sessions table of
// db. The schema must already be migrated.
func NewSQLiteTokenStore(db *DB, logger *logger.Logger) TokenStore {
	return &sqliteTokenStore{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteTokenStore) LoadToken(ctx context.Context, server string) (string, error) {
	query, args, err := buildSelectToken(server)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteTokenStore.LoadToken").
			Str("server", server).
			Msg("failed to query stored token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

func (s *sqliteTokenStore) SaveToken(ctx context.Context, server, token string) error {
	query, args, err := buildUpsertToken(server, token, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteTokenStore.SaveToken").
			Str("server", server).
			Msg("failed to upsert token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteTokenStore) DeleteToken(ctx context.Context, server string) error {
	query, args, err := buildDeleteToken(server)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteTokenStore.DeleteToken").
			Str("server", server).
			Msg("failed to delete token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
