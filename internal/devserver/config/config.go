// Package config handles configuration for the development backend:
// defaults, then environment variables, then command-line flags.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrijs2005/userdash/internal/flagx"
)

// Config holds runtime settings for the dev server.
//
// SecretKey signs bearer tokens (HS256). The default is for local use only.
type Config struct {
	Addr          string        `env:"USERDASH_DEV_ADDR"`
	SecretKey     string        `env:"USERDASH_DEV_SECRET"`
	TokenValidity time.Duration `env:"USERDASH_DEV_TOKEN_TTL"`
	LogLevel      string        `env:"USERDASH_DEV_LOG_LEVEL"`
}

func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.SecretKey = "secretKey"
	c.TokenValidity = time.Hour
	c.LogLevel = "info"
}

// Load applies defaults, environ (os.Environ form) and args, in that order.
func Load(args, environ []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := env.ParseWithOptions(cfg, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.Environ())
}

// parseFlags reads:
//
//	-a string   listen address
//	-k string   token signing key
//	-t duration token lifetime, e.g. 30m
//	-l string   log level
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-k", "-t", "-l"})

	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "listen address")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "token signing key")
	fs.DurationVar(&cfg.TokenValidity, "t", cfg.TokenValidity, "token lifetime")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
