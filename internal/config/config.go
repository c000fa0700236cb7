package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/pizzeria/internal/client"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvAPIURL    = "PIZZERIA_API_URL"
	EnvAddr      = "PIZZERIA_ADDR"
	EnvDBPath    = "PIZZERIA_DB_PATH"
	EnvThemeFile = "PIZZERIA_THEME_FILE"
)

const (
	// DefaultAPIURL is where the form and CLI send requests
	DefaultAPIURL = client.DefaultBaseURL
	// DefaultAddr is where pizzeriad listens
	DefaultAddr = ":5000"
)

// Config represents the application configuration
type Config struct {
	API         APIConfig    `yaml:"api"`
	Server      ServerConfig `yaml:"server"`
	KeyMappings KeyMappings  `yaml:"key_mappings"`
	ColorScheme ColorScheme  `yaml:"theme"`
}

// APIConfig is the client side of the topping API
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// ServerConfig configures pizzeriad
type ServerConfig struct {
	Addr   string `yaml:"addr"`
	DBPath string `yaml:"db_path"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads .env from the working directory, then the config file from the
// user's config directory, then environment overrides.
// A missing file of either kind is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	configPath, err := getConfigPath()
	if err != nil {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile reads the config at path and applies defaults and environment
// overrides. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config as YAML to path, creating its directory
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Server.DBPath = v
	}
	loadThemeFile(c)
}

// loadThemeFile merges the theme from PIZZERIA_THEME_FILE, if set and readable
func loadThemeFile(c *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	data, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}
	if yaml.Unmarshal(data, &themeConfig) == nil {
		c.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "pizzeria", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "pizzeria", "config.yaml"), nil
}

// DefaultDBPath returns ~/.pizzeria/pizzeria.db, or a relative path when the
// home directory is unknown
func DefaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pizzeria", "pizzeria.db")
	}
	return filepath.Join(homeDir, ".pizzeria", "pizzeria.db")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultAPIURL
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.DBPath == "" {
		c.Server.DBPath = DefaultDBPath()
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
