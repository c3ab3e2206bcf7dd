package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// DownloadDir is the directory downloaded resources are saved into.
	DownloadDir string
	// LogFile is the path of the client log.
	LogFile string
	// LogLevel is the parsed minimal log level.
	LogLevel zerolog.Level
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address of the backend.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the token store.
	DSN string
}

// ClientKeyring contains OS keyring settings for the client.
type ClientKeyring struct {
	// Service is the service name tokens are stored under.
	Service string
}

// ClientStorage groups token store settings.
type ClientStorage struct {
	// TokenBackend is [TokenBackendSQLite] or [TokenBackendKeyring].
	TokenBackend string
	// DB holds local database settings.
	DB ClientDB
	// Keyring holds OS keyring settings.
	Keyring ClientKeyring
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// TokenExpiryInterval defines how often the token expiry worker runs.
	TokenExpiryInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the backend address and timeouts.
	Adapter ClientAdapter
	// Storage contains token store settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DownloadDir: cfg.App.DownloadDir,
			LogFile:     cfg.App.LogFile,
			LogLevel:    level,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			TokenBackend: cfg.Storage.TokenBackend,
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Keyring: ClientKeyring{
				Service: cfg.Storage.Keyring.Service,
			},
		},
		Workers: ClientWorkers{TokenExpiryInterval: cfg.Workers.TokenExpiryInterval},
	}

	return clientCfg, clientCfg.validate()
}
