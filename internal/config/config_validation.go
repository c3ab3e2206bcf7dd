// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants that do not depend on the runtime view.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.TokenExpiryInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.TokenBackend {
	case TokenBackendSQLite:
		if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
			return ErrInvalidStorageConfigs
		}
	case TokenBackendKeyring:
		if cfg.Storage.Keyring.Service == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.TokenExpiryInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.DownloadDir == "" || cfg.App.LogFile == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
