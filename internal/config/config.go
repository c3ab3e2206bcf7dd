// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the client.
// It aggregates all sub-configurations and is populated by merging values
// from defaults, a config file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: download directory and logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the token store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Populated via the CONFIG environment variable or the --config flag.
	ConfigFilePath string `env:"CONFIG"`

	// EnvFilePath is the .env file loaded before the environment is read.
	// Populated via the ENV_FILE environment variable or the --env-file flag.
	EnvFilePath string `env:"ENV_FILE"`
}

// App groups process-level settings.
type App struct {
	// DownloadDir is the directory downloaded resources are saved into.
	DownloadDir string `env:"DOWNLOAD_DIR"`

	// LogFile is the path of the client log. The client never logs to
	// stdout because the terminal belongs to the CLI output and the TUI.
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter groups the settings of the backend transport.
type Adapter struct {
	// HTTPAddress is the base URL of the backend, e.g. http://localhost:8000.
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the token store.
type Storage struct {
	// TokenBackend selects where the session token is kept: "sqlite" or
	// "keyring".
	TokenBackend string `env:"TOKEN_BACKEND"`

	// DB holds the SQLite settings used by the "sqlite" backend.
	DB DB `envPrefix:"DB_"`

	// Keyring holds the OS keyring settings used by the "keyring" backend.
	Keyring Keyring `envPrefix:"KEYRING_"`
}

// DB holds the local database connection settings.
type DB struct {
	// DSN is the SQLite file path or DSN.
	DSN string `env:"DSN"`
}

// Keyring holds the OS keyring settings.
type Keyring struct {
	// Service is the keyring service name tokens are stored under.
	Service string `env:"SERVICE"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// TokenExpiryInterval is how often the stored token's expiry is checked.
	TokenExpiryInterval time.Duration `env:"TOKEN_EXPIRY_INTERVAL"`
}
