package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdash/internal/flagx"
	"github.com/dmitrijs2005/userdash/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent fields keep
// the value set by earlier stages.
type JsonConfig struct {
	BackendURL      *string         `json:"backend_url"`
	DatabasePath    *string         `json:"database_path"`
	WebAddr         *string         `json:"web_addr"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
	LogLevel        *string         `json:"log_level"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setIf(&cfg.BackendURL, jc.BackendURL)
	setIf(&cfg.DatabasePath, jc.DatabasePath)
	setIf(&cfg.WebAddr, jc.WebAddr)
	setIf(&cfg.LogLevel, jc.LogLevel)
	if jc.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}
	return nil
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
