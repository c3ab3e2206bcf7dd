package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/zalando/go-keyring"
)

type keyringTokenStore struct {
	service string
	logger  *logger.Logger
}

// NewKeyringTokenStore returns a [TokenStore] that keeps tokens in the OS
// keyring under service, one entry per server address.
func NewKeyringTokenStore(service string, logger *logger.Logger) TokenStore {
	return &keyringTokenStore{service: service, logger: logger}
}

func (k *keyringTokenStore) LoadToken(_ context.Context, server string) (string, error) {
	token, err := keyring.Get(k.service, server)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		k.logger.Err(err).Str("func", "keyringTokenStore.LoadToken").Msg("failed to read keyring")
		return "", fmt.Errorf("%w: %w", ErrKeyring, err)
	}

	return token, nil
}

func (k *keyringTokenStore) SaveToken(_ context.Context, server, token string) error {
	if err := keyring.Set(k.service, server, token); err != nil {
		k.logger.Err(err).Str("func", "keyringTokenStore.SaveToken").Msg("failed to write keyring")
		return fmt.Errorf("%w: %w", ErrKeyring, err)
	}

	return nil
}

func (k *keyringTokenStore) DeleteToken(_ context.Context, server string) error {
	err := keyring.Delete(k.service, server)
	if err == nil || errors.Is(err, keyring.ErrNotFound) {
		return nil
	}

	k.logger.Err(err).Str("func", "keyringTokenStore.DeleteToken").Msg("failed to delete keyring entry")
	return fmt.Errorf("%w: %w", ErrKeyring, err)
}
