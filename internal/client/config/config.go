package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the client binaries.
type Config struct {
	BackendURL      string        `env:"USERDASH_BACKEND_URL"`
	DatabasePath    string        `env:"USERDASH_DB"`
	WebAddr         string        `env:"USERDASH_WEB_ADDR"`
	ShutdownTimeout time.Duration `env:"USERDASH_SHUTDOWN_TIMEOUT"`
	LogLevel        string        `env:"USERDASH_LOG_LEVEL"`
}

func (c *Config) LoadDefaults() {
	c.BackendURL = "http://127.0.0.1:8080"
	c.DatabasePath = "userdash.db"
	c.WebAddr = "127.0.0.1:3000"
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// Load builds a Config from defaults, the JSON file, environ and args, in
// that order. args excludes the program name; environ is in os.Environ form.
func Load(args, environ []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg, args, environ); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.Environ())
}
