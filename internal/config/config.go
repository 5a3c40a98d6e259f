// Package config loads the terminal's settings from an optional YAML file,
// a .env file and the process environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ngmaloney/wardrobe-terminal/internal/database"
	"github.com/ngmaloney/wardrobe-terminal/internal/identity"
)

// DefaultPath is read when no -config flag is given. A missing file is fine.
const DefaultPath = "wardrobe-terminal.yaml"

// Config holds everything the binary needs to wire its collaborators
type Config struct {
	Backend  BackendConfig   `yaml:"backend"`
	Identity identity.Config `yaml:"identity"`
	Storage  StorageConfig   `yaml:"storage"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// BackendConfig locates the weather/user backend
type BackendConfig struct {
	Scheme            string        `yaml:"scheme"`
	Host              string        `yaml:"host"`
	Port              int           `yaml:"port"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

// StorageConfig locates the local database
type StorageConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig enables the debug log file. Empty means logging is discarded.
type LoggingConfig struct {
	File string `yaml:"file"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			Scheme:            "http",
			Host:              "localhost",
			Port:              5000,
			Timeout:           30 * time.Second,
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Identity: identity.Config{
			WebClientID: "wardrobe-terminal",
			Scopes:      []string{"email", "profile"},
		},
		Storage: StorageConfig{
			Dir: database.DefaultDir,
		},
	}
}

// Load builds the configuration. path may be empty, in which case DefaultPath
// is tried and silently skipped when absent.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not read .env: %v", err)
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WARDROBE_BACKEND_SCHEME"); v != "" {
		cfg.Backend.Scheme = v
	}
	if v := os.Getenv("WARDROBE_BACKEND_HOST"); v != "" {
		cfg.Backend.Host = v
	}
	if v := os.Getenv("WARDROBE_BACKEND_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Backend.Port = port
		} else {
			log.Printf("Warning: ignoring WARDROBE_BACKEND_PORT %q", v)
		}
	}
	if v := os.Getenv("WARDROBE_WEB_CLIENT_ID"); v != "" {
		cfg.Identity.WebClientID = v
	}
	if v := os.Getenv("WARDROBE_IOS_CLIENT_ID"); v != "" {
		cfg.Identity.IOSClientID = v
	}
	if v := os.Getenv("WARDROBE_DATA_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("WARDROBE_DEBUG_LOG"); v != "" {
		cfg.Logging.File = v
	}
}

// Validate rejects configurations the client cannot run with
func (c *Config) Validate() error {
	if c.Backend.Host == "" {
		return fmt.Errorf("config: backend host is required")
	}
	if c.Backend.Scheme != "http" && c.Backend.Scheme != "https" {
		return fmt.Errorf("config: unsupported backend scheme %q", c.Backend.Scheme)
	}
	if c.Backend.Port <= 0 || c.Backend.Port > 65535 {
		return fmt.Errorf("config: invalid backend port %d", c.Backend.Port)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("config: backend timeout must be positive")
	}
	if err := c.Identity.Validate(); err != nil {
		return err
	}
	return nil
}

// BaseURL is the backend root, e.g. http://localhost:5000
func (c *Config) BaseURL() string {
	return c.Backend.Scheme + "://" + net.JoinHostPort(c.Backend.Host, strconv.Itoa(c.Backend.Port))
}

// DatabasePath is where the local store lives
func (c *Config) DatabasePath() string {
	return database.DBPath(c.Storage.Dir)
}
