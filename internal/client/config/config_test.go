package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// noDotEnv points -env-file somewhere that does not exist so the working
// directory's .env never leaks into a test.
func noDotEnv(t *testing.T) []string {
	return []string{"-env-file", filepath.Join(t.TempDir(), "missing.env")}
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.BackendURL)
	assert.Equal(t, "userdash.db", c.DatabasePath)
	assert.Equal(t, "127.0.0.1:3000", c.WebAddr)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoad_NoSources(t *testing.T) {
	cfg, err := Load(noDotEnv(t), nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), *cfg))
}

func TestLoad_Precedence(t *testing.T) {
	jsonPath := writeFile(t, "cfg.json", `{
		"backend_url": "http://json:1",
		"database_path": "json.db",
		"web_addr": "json:3000",
		"shutdown_timeout": "10s"
	}`)
	envPath := writeFile(t, "test.env", "USERDASH_DB=dotenv.db\nUSERDASH_WEB_ADDR=dotenv:3000\nUSERDASH_LOG_LEVEL=warn\n")

	args := []string{"-c", jsonPath, "-env-file", envPath, "-b", "http://flag:2"}
	environ := []string{"USERDASH_WEB_ADDR=process:3000", "UNRELATED=1"}

	cfg, err := Load(args, environ)
	require.NoError(t, err)

	want := Config{
		BackendURL:      "http://flag:2",
		DatabasePath:    "dotenv.db",
		WebAddr:         "process:3000",
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "warn",
	}
	assert.Empty(t, cmp.Diff(want, *cfg))
}

func TestLoad_JSONPartialKeepsDefaults(t *testing.T) {
	jsonPath := writeFile(t, "cfg.json", `{"log_level": "debug", "shutdown_timeout": 2000000000}`)

	cfg, err := Load(append(noDotEnv(t), "-config", jsonPath), nil)
	require.NoError(t, err)

	want := defaults()
	want.LogLevel = "debug"
	want.ShutdownTimeout = 2 * time.Second
	assert.Empty(t, cmp.Diff(want, *cfg))
}

func TestLoad_EnvDuration(t *testing.T) {
	cfg, err := Load(noDotEnv(t), []string{"USERDASH_SHUTDOWN_TIMEOUT=250ms"})
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
}

func TestLoad_Errors(t *testing.T) {
	badJSON := writeFile(t, "bad.json", `{"shutdown_timeout": "soon"}`)

	tests := []struct {
		name    string
		args    []string
		environ []string
	}{
		{"missing json file", []string{"-c", filepath.Join(t.TempDir(), "nope.json")}, nil},
		{"bad json duration", []string{"-c", badJSON}, nil},
		{"bad env duration", nil, []string{"USERDASH_SHUTDOWN_TIMEOUT=forever"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(append(noDotEnv(t), tt.args...), tt.environ)
			require.Error(t, err)
		})
	}
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	c := defaults()
	require.NoError(t, parseFlags(&c, []string{"-x", "1", "-d", "other.db", "-l=debug", "extra"}))
	assert.Equal(t, "other.db", c.DatabasePath)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadDotEnv_Missing(t *testing.T) {
	vars, err := loadDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Empty(t, vars)
}
