package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Defaults used when the config file or environment leaves a value unset.
const (
	DefaultAddress       = ":8080"
	DefaultDatabase      = "./data/smartsanstha.db"
	DefaultSessionTTL    = 24 * time.Hour
	DefaultPurgeInterval = time.Minute
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Path to a YAML or JSON scenario pack. Empty means the built-in pack.
	ScenarioPack string `json:"scenario_pack"`
	Database     string `json:"database"`
	// Durations use time.ParseDuration syntax ("24h", "90s").
	SessionTTL    string `json:"session_ttl"`
	PurgeInterval string `json:"purge_interval"`
}

// LoadedConfig holds the server settings.
type LoadedConfig struct {
	ServerAddress string
	ScenarioPack  string
	Database      string
	// Sessions idle longer than SessionTTL are purged.
	SessionTTL    time.Duration
	PurgeInterval time.Duration
}

// Defaults returns the configuration used when no file is given.
func Defaults() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress: DefaultAddress,
		Database:      DefaultDatabase,
		SessionTTL:    DefaultSessionTTL,
		PurgeInterval: DefaultPurgeInterval,
	}
}

// LoadConfig reads the JSON configuration file at path. Keys that are
// absent keep their defaults.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := Defaults()
	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	cfg.ScenarioPack = strings.TrimSpace(rc.ScenarioPack)
	if rc.Database != "" {
		cfg.Database = rc.Database
	}
	if rc.SessionTTL != "" {
		d, err := time.ParseDuration(rc.SessionTTL)
		if err != nil {
			return nil, fmt.Errorf("config file %s: invalid session_ttl %q: %w", path, rc.SessionTTL, err)
		}
		cfg.SessionTTL = d
	}
	if rc.PurgeInterval != "" {
		d, err := time.ParseDuration(rc.PurgeInterval)
		if err != nil {
			return nil, fmt.Errorf("config file %s: invalid purge_interval %q: %w", path, rc.PurgeInterval, err)
		}
		cfg.PurgeInterval = d
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

type envOverrides struct {
	Address       string        `env:"SMARTSANSTHA_ADDR"`
	ScenarioPack  string        `env:"SMARTSANSTHA_PACK"`
	Database      string        `env:"SMARTSANSTHA_DB"`
	SessionTTL    time.Duration `env:"SMARTSANSTHA_SESSION_TTL"`
	PurgeInterval time.Duration `env:"SMARTSANSTHA_PURGE_INTERVAL"`
}

// ApplyEnv overrides cfg with any SMARTSANSTHA_* variables that are set.
func ApplyEnv(cfg *LoadedConfig) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.Address != "" {
		cfg.ServerAddress = o.Address
	}
	if o.ScenarioPack != "" {
		cfg.ScenarioPack = o.ScenarioPack
	}
	if o.Database != "" {
		cfg.Database = o.Database
	}
	if o.SessionTTL != 0 {
		cfg.SessionTTL = o.SessionTTL
	}
	if o.PurgeInterval != 0 {
		cfg.PurgeInterval = o.PurgeInterval
	}
	return cfg.validate()
}

func (c *LoadedConfig) validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive, got %s", c.SessionTTL)
	}
	if c.PurgeInterval <= 0 {
		return fmt.Errorf("purge_interval must be positive, got %s", c.PurgeInterval)
	}
	return nil
}
