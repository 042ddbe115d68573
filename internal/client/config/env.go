package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/userdash/internal/flagx"
)

const defaultEnvFile = ".env"

// parseEnv overlays cfg with the variables in environ, completed by the
// .env file. Variables that are not set leave the field untouched.
func parseEnv(cfg *Config, args, environ []string) error {
	vars, err := loadDotEnv(flagx.EnvFilePath(args, defaultEnvFile))
	if err != nil {
		return err
	}
	for k, v := range env.ToMap(environ) {
		vars[k] = v
	}
	return env.ParseWithOptions(cfg, env.Options{Environment: vars})
}

// loadDotEnv reads a dotenv file. A missing file yields an empty map.
func loadDotEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	return vars, err
}
