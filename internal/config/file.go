package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// structuredFileConfig mirrors [StructuredConfig] for config files, with
// durations written as strings ("30s", "1m").
type structuredFileConfig struct {
	App struct {
		DownloadDir string `json:"download_dir" yaml:"download_dir"`
		LogFile     string `json:"log_file" yaml:"log_file"`
		LogLevel    string `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Storage struct {
		TokenBackend string `json:"token_backend" yaml:"token_backend"`
		DB           struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
		Keyring struct {
			Service string `json:"service" yaml:"service"`
		} `json:"keyring,omitempty" yaml:"keyring,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Workers struct {
		TokenExpiryInterval Duration `json:"token_expiry_interval" yaml:"token_expiry_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg structuredFileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	case ".json", "":
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, ext)
	}

	return &StructuredConfig{
		App: App{
			DownloadDir: fileCfg.App.DownloadDir,
			LogFile:     fileCfg.App.LogFile,
			LogLevel:    fileCfg.App.LogLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			TokenBackend: fileCfg.Storage.TokenBackend,
			DB:           DB{DSN: fileCfg.Storage.DB.DSN},
			Keyring:      Keyring{Service: fileCfg.Storage.Keyring.Service},
		},
		Workers: Workers{
			TokenExpiryInterval: time.Duration(fileCfg.Workers.TokenExpiryInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s" as well as plain nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
