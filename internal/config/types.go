package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Root is the top-level configuration shape loaded from the yaml file.
type Root struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Vault   *VaultConfig  `yaml:"vault,omitempty"`
}

// ServerConfig controls the console HTTP listener.
type ServerConfig struct {
	Listen         string   `yaml:"listen"`
	RequestTimeout Duration `yaml:"request_timeout"`
	SessionTTL     Duration `yaml:"session_ttl"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // tint, json
}

// VaultConfig enables the optional headless credential bootstrap. When
// absent, credentials only ever enter through interactive session creation.
type VaultConfig struct {
	Address     string `yaml:"address"`
	RoleID      string `yaml:"role_id"`
	SecretID    string `yaml:"secret_id"`
	MountPath   string `yaml:"mount_path"`
	SecretPath  string `yaml:"secret_path"`
	KeyField    string `yaml:"key_field,omitempty"`
	SecretField string `yaml:"secret_field,omitempty"`
}

// Duration is a time.Duration that unmarshals from yaml strings like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

const (
	defaultListen         = "127.0.0.1:8620"
	defaultRequestTimeout = 30 * time.Second
	defaultSessionTTL     = 12 * time.Hour
)

func (r *Root) applyDefaults() {
	if r.Server.Listen == "" {
		r.Server.Listen = defaultListen
	}
	if r.Server.RequestTimeout == 0 {
		r.Server.RequestTimeout = Duration(defaultRequestTimeout)
	}
	if r.Server.SessionTTL == 0 {
		r.Server.SessionTTL = Duration(defaultSessionTTL)
	}
	if r.Logging.Level == "" {
		r.Logging.Level = "info"
	}
	if r.Logging.Format == "" {
		r.Logging.Format = "tint"
	}
}
