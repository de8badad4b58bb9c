package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pankajredekar/productapi/internal/store"
)

const (
	DefaultConfigFile = "productapi.yml"
	DefaultPort       = 5000
	DefaultStaticDir  = "./static"
)

// Config holds everything the service needs at startup. It is built once and
// passed explicitly to the components that need it.
type Config struct {
	DatabaseURL    string      `yaml:"database_url"`
	AppPort        int         `yaml:"app_port"`
	StaticDir      string      `yaml:"static_dir"`
	LogLevel       string      `yaml:"log_level"`
	LogFormat      string      `yaml:"log_format"`
	CORSOrigins    []string    `yaml:"cors_origins"`
	Pooled         bool        `yaml:"pooled"`
	BootstrapRetry RetryConfig `yaml:"bootstrap_retry"`
	RequestRetry   RetryConfig `yaml:"request_retry"`
}

// RetryConfig describes a fixed-delay connect retry.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	Delay       time.Duration `yaml:"delay"`
}

// Policy converts the config into the store's retry policy
func (r RetryConfig) Policy() store.RetryPolicy {
	return store.RetryPolicy{MaxAttempts: r.MaxAttempts, Delay: r.Delay}
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		AppPort:     DefaultPort,
		StaticDir:   DefaultStaticDir,
		LogLevel:    "info",
		LogFormat:   "text",
		CORSOrigins: []string{"*"},
		BootstrapRetry: RetryConfig{
			MaxAttempts: 5,
			Delay:       2 * time.Second,
		},
		RequestRetry: RetryConfig{
			MaxAttempts: 1,
		},
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Resolve relative paths
	if cfg.StaticDir != "" && !filepath.IsAbs(cfg.StaticDir) {
		cfg.StaticDir = filepath.Join(filepath.Dir(configPath), cfg.StaticDir)
	}

	return cfg, nil
}

// Load builds the configuration from, in increasing precedence: defaults, the
// optional YAML file at configPath, a .env file in the working directory and
// the process environment.
func Load(configPath string) (*Config, error) {
	cfg := Default()
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		switch {
		case err == nil:
			cfg = loaded
		case errors.Is(err, fs.ErrNotExist):
			// the file is optional
		default:
			return nil, err
		}
	}

	// godotenv never overrides variables that are already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("DATABASE_URL"); ok {
		c.DatabaseURL = v
	}
	if v, ok := lookup("APP_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid APP_PORT %q: %w", v, err)
		}
		c.AppPort = port
	}
	if v, ok := lookup("STATIC_DIR"); ok && v != "" {
		c.StaticDir = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.AppPort)
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	if c.AppPort < 1 || c.AppPort > 65535 {
		return fmt.Errorf("app_port %d is out of range", c.AppPort)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", c.LogFormat)
	}
	if c.BootstrapRetry.MaxAttempts < 1 {
		return fmt.Errorf("bootstrap_retry.max_attempts must be at least 1")
	}
	if c.RequestRetry.MaxAttempts < 1 {
		return fmt.Errorf("request_retry.max_attempts must be at least 1")
	}
	return nil
}
