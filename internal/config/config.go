// Package config loads agendactl settings from a YAML file, the environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appDir            = "agendactl"
	defaultConfigFile = "config.yaml"
	defaultLogFile    = "agendactl.log"
	defaultTimeout    = 30
)

// Environment variables that override file settings.
const (
	EnvEndpoint = "AGENDA_ENDPOINT"
	EnvOrgID    = "AGENDA_ORG_ID"
	EnvToken    = "AGENDA_TOKEN"
)

// ErrNoEndpoint indicates no GraphQL endpoint was configured anywhere.
var ErrNoEndpoint = errors.New("no GraphQL endpoint configured")

// Config holds the resolved settings.
type Config struct {
	Endpoint       string `yaml:"endpoint"`        // GraphQL endpoint URL
	OrganizationID string `yaml:"organization_id"` // Default organization
	TokenCommand   string `yaml:"token_command"`   // Shell command printing a bearer token
	WebURL         string `yaml:"web_url"`         // Web admin base URL, used to open events
	TimeoutSeconds int    `yaml:"timeout_seconds"` // HTTP timeout per request
	LogFile        string `yaml:"log_file"`        // Log destination (the TUI owns stdout)
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks that the settings needed to talk to the API are present.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("%w: set endpoint in config, %s, or --endpoint", ErrNoEndpoint, EnvEndpoint)
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/agendactl/config.yaml.
func DefaultPath() (string, error) {
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, defaultConfigFile), nil
}

// DefaultLogPath returns $XDG_STATE_HOME/agendactl/agendactl.log.
func DefaultLogPath() (string, error) {
	dir, err := xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, defaultLogFile), nil
}

// Load reads the YAML file at path (a missing file is not an error),
// then applies environment overrides and defaults.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// No file: rely on env and flags
	default:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.applyDefaults(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvEndpoint)); v != "" {
		c.Endpoint = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOrgID)); v != "" {
		c.OrganizationID = v
	}
}

func (c *Config) applyDefaults() error {
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeout
	}
	if c.LogFile == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return fmt.Errorf("failed to resolve log path: %w", err)
		}
		c.LogFile = p
	}
	c.WebURL = strings.TrimRight(c.WebURL, "/")
	return nil
}

func xdgDir(env, fallback string) (string, error) {
	if dir := os.Getenv(env); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback), nil
}
