package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the values of the configuration flags registered on a flag
// set. They are read after the command line was parsed.
type Flags struct {
	address        string
	requestTimeout time.Duration
	tokenBackend   string
	dsn            string
	keyringService string
	downloadDir    string
	logFile        string
	logLevel       string
	expiryInterval time.Duration
	configPath     string
	envFile        string
}

// RegisterFlags registers all configuration flags on fs and returns the
// holder their values are parsed into.
//
// Flags:
//
//	-a/--address          backend base URL, e.g. http://localhost:8000
//	--request-timeout     request timeout (e.g. "30s", "1m")
//	--token-backend       token store: sqlite or keyring
//	-d/--dsn              SQLite DSN of the token store
//	--keyring-service     OS keyring service name
//	--download-dir        directory downloads are saved into
//	--log-file            client log path
//	--log-level           log level (debug, info, warn, error)
//	--token-check-every   token expiry check interval
//	-c/--config           JSON or YAML config file path
//	--env-file            .env file path
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.address, "address", "a", "", "Backend base URL")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&f.tokenBackend, "token-backend", "", "Token store backend (sqlite, keyring)")
	fs.StringVarP(&f.dsn, "dsn", "d", "", "Token store SQLite DSN")
	fs.StringVar(&f.keyringService, "keyring-service", "", "OS keyring service name")
	fs.StringVar(&f.downloadDir, "download-dir", "", "Directory downloads are saved into")
	fs.StringVar(&f.logFile, "log-file", "", "Client log file path")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&f.expiryInterval, "token-check-every", 0, "Token expiry check interval")
	fs.StringVarP(&f.configPath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVar(&f.envFile, "env-file", "", ".env file path")

	return f
}

func (f *Flags) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DownloadDir: f.downloadDir,
			LogFile:     f.logFile,
			LogLevel:    f.logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    f.address,
			RequestTimeout: f.requestTimeout,
		},
		Storage: Storage{
			TokenBackend: f.tokenBackend,
			DB:           DB{DSN: f.dsn},
			Keyring:      Keyring{Service: f.keyringService},
		},
		Workers: Workers{
			TokenExpiryInterval: f.expiryInterval,
		},
		ConfigFilePath: f.configPath,
		EnvFilePath:    f.envFile,
	}
}
