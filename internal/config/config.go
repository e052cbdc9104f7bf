// Package config loads the service configuration from a TOML file, with
// environment overrides for secrets and deployment-specific values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Addr string `toml:"addr"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	// storage
	Storage     string   `toml:"storage"`
	DatabaseURL string   `toml:"database_url"`
	SessionTTL  Duration `toml:"session_ttl"`

	Nutrition   Nutrition   `toml:"nutrition"`
	SnapshotJob SnapshotJob `toml:"snapshot_job"`
	Metrics     Metrics     `toml:"metrics"`
	OIDC        OIDC        `toml:"oidc"`
}

type Nutrition struct {
	SodiumGoal    float64 `toml:"sodium_goal"`
	StrictProgram bool    `toml:"strict_program"`
}

type SnapshotJob struct {
	Enabled  bool     `toml:"enabled"`
	Interval Duration `toml:"interval"`
}

type Metrics struct {
	Namespace string `toml:"namespace"`
	Subsystem string `toml:"subsystem"`
}

type OIDC struct {
	Enabled      bool   `toml:"enabled"`
	Issuer       string `toml:"issuer"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"-"`
	RedirectURL  string `toml:"redirect_url"`
}

// Duration lets TOML files use strings such as "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load decodes the TOML file at path, picks the section for env, applies
// defaults and environment overrides, and validates the result.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config %s has no [%s] section", path, env)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Storage == "" {
		c.Storage = StoragePostgres
	}
	if c.SessionTTL.Duration == 0 {
		c.SessionTTL.Duration = 24 * time.Hour
	}
	if c.Nutrition.SodiumGoal == 0 {
		c.Nutrition.SodiumGoal = 2300
	}
	if c.SnapshotJob.Interval.Duration == 0 {
		c.SnapshotJob.Interval.Duration = 24 * time.Hour
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "fitcore"
	}
	if c.Metrics.Subsystem == "" {
		c.Metrics.Subsystem = "api"
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("OIDC_CLIENT_SECRET"); v != "" {
		c.OIDC.ClientSecret = v
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			err = multierr.Append(err, errors.New("database_url (or DATABASE_URL) is required for postgres storage"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unknown storage %q", c.Storage))
	}
	if c.Nutrition.SodiumGoal < 0 {
		err = multierr.Append(err, errors.New("nutrition.sodium_goal must be >= 0"))
	}
	if c.SnapshotJob.Interval.Duration < time.Minute {
		err = multierr.Append(err, errors.New("snapshot_job.interval must be at least 1m"))
	}
	if c.OIDC.Enabled {
		if c.OIDC.Issuer == "" || c.OIDC.ClientID == "" || c.OIDC.RedirectURL == "" {
			err = multierr.Append(err, errors.New("oidc.issuer, oidc.client_id and oidc.redirect_url are required when oidc is enabled"))
		}
		if c.OIDC.ClientSecret == "" {
			err = multierr.Append(err, errors.New("OIDC_CLIENT_SECRET is required when oidc is enabled"))
		}
	}
	return err
}
