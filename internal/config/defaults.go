package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	appDirName = "go-edu-resources"

	// TokenBackendSQLite keeps the token in a local SQLite database.
	TokenBackendSQLite = "sqlite"
	// TokenBackendKeyring keeps the token in the OS keyring.
	TokenBackendKeyring = "keyring"

	defaultHTTPAddress         = "http://localhost:8000"
	defaultRequestTimeout      = 30 * time.Second
	defaultTokenExpiryInterval = time.Minute
	defaultLogLevel            = "info"
)

// Defaults returns the lowest-priority configuration layer. Paths are placed
// under the user's configuration directory, or the working directory when
// it cannot be determined.
func Defaults() *StructuredConfig {
	dir := "."
	if userDir, err := os.UserConfigDir(); err == nil {
		dir = filepath.Join(userDir, appDirName)
	}

	return &StructuredConfig{
		App: App{
			DownloadDir: ".",
			LogFile:     filepath.Join(dir, "client.log"),
			LogLevel:    defaultLogLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			TokenBackend: TokenBackendSQLite,
			DB:           DB{DSN: filepath.Join(dir, "client.db")},
			Keyring:      Keyring{Service: appDirName},
		},
		Workers: Workers{
			TokenExpiryInterval: defaultTokenExpiryInterval,
		},
	}
}
