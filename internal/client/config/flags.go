package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/userdash/internal/flagx"
)

// parseFlags only looks at the flags it owns, so the same command line can
// also carry -c and -env-file.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-b", "-d", "-w", "-l"})

	fs := flag.NewFlagSet("userdash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BackendURL, "b", cfg.BackendURL, "backend API base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local session database path")
	fs.StringVar(&cfg.WebAddr, "w", cfg.WebAddr, "browser shell listen address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
