// Package flagx holds helpers that let several config stages read their own
// flags from the same command line without tripping over each other.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the subset of args made of the allowed flags and their
// values. Both "-f value" and "-f=value" forms are recognised; a value is only
// taken from the next argument when it does not itself look like a flag.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFilePath extracts the JSON config path given with -c or -config.
// It returns "" when neither flag is present.
func ConfigFilePath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

// EnvFilePath extracts the dotenv path given with -env-file, falling back to
// def when the flag is absent.
func EnvFilePath(args []string, def string) string {
	path := def

	fs := flag.NewFlagSet("dotenv", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "env-file", def, "Path to .env file")
	_ = fs.Parse(FilterArgs(args, []string{"-env-file"}))

	return path
}
