package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the config file
const (
	EnvName     = "RESTAURANT_NAME"
	EnvDBPath   = "RESTAURANT_DB_PATH"
	EnvDBEnable = "RESTAURANT_DB_ENABLED"
	EnvLogLevel = "RESTAURANT_LOG_LEVEL"
	EnvLogFile  = "RESTAURANT_LOG_FILE"
)

type Config struct {
	Restaurant RestaurantConfig `yaml:"restaurant"`

	// Database settings
	Database DatabaseConfig `yaml:"database"`

	Log LogConfig `yaml:"log"`
}

type RestaurantConfig struct {
	Name string `yaml:"name"`
}

type DatabaseConfig struct {
	Enabled bool   `yaml:"enabled"` // false keeps everything in memory
	Path    string `yaml:"path"`    // Path to SQLite database
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Mode  string `yaml:"mode"`  // development or production
	File  string `yaml:"file"`  // empty logs to stderr
}

// configDir returns ~/.config/restaurant
func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		homeDir = "."
	}
	return filepath.Join(homeDir, ".config", "restaurant")
}

// DefaultConfigPath returns ~/.config/restaurant/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	dir := configDir()
	return &Config{
		Restaurant: RestaurantConfig{
			Name: "Emery's",
		},
		Database: DatabaseConfig{
			Enabled: true,
			Path:    filepath.Join(dir, "restaurant.db"),
		},
		Log: LogConfig{
			Level: "info",
			Mode:  "development",
			File:  filepath.Join(dir, "restaurant.log"),
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist.
// A .env file in the working directory is read first; environment variables
// override whatever the YAML file says.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults
	default:
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvName)); v != "" {
		c.Restaurant.Name = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDBPath)); v != "" {
		c.Database.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDBEnable)); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New(EnvDBEnable + " must be true or false")
		}
		c.Database.Enabled = enabled
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.Log.File = strings.TrimSpace(v)
	}
	return nil
}

// Validate returns an error if the config cannot be used
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Restaurant.Name) == "" {
		return errors.New("restaurant name is required")
	}
	if c.Database.Enabled && strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database path is required when the database is enabled")
	}
	return nil
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the directories for the database and the log file
func (c *Config) EnsureDirectories() error {
	if c.Database.Enabled {
		if err := os.MkdirAll(filepath.Dir(c.Database.Path), 0755); err != nil {
			return err
		}
	}

	if c.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(c.Log.File), 0755); err != nil {
			return err
		}
	}

	return nil
}
