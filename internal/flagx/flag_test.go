package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-b", "http://api.local", "-d", "ud.db"},
			allowedFlags: []string{"-b"},
			want:         []string{"-b", "http://api.local"},
		},
		{
			name:         "equals form",
			args:         []string{"-config=alt.json", "-b", "x"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-config=alt.json"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "-config=alt.json"},
		},
		{
			name:         "repeated flag keeps order",
			args:         []string{"-w", ":1", "-d", "a.db", "-w", ":2"},
			allowedFlags: []string{"-w"},
			want:         []string{"-w", ":1", "-w", ":2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFilePath(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigFilePath([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", ConfigFilePath([]string{"-b", "x", "-config", "/path/long.json"}))
	assert.Equal(t, "/path/2.json", ConfigFilePath([]string{"-c", "/path/1.json", "-config", "/path/2.json"}))
	assert.Empty(t, ConfigFilePath([]string{"-x", "1"}))
}

func TestEnvFilePath(t *testing.T) {
	assert.Equal(t, ".env", EnvFilePath(nil, ".env"))
	assert.Equal(t, "/etc/userdash.env", EnvFilePath([]string{"-d", "a.db", "-env-file", "/etc/userdash.env"}, ".env"))
	assert.Equal(t, "x.env", EnvFilePath([]string{"-env-file=x.env"}, ".env"))
}
