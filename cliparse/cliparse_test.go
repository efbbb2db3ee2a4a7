// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("DEVICE_KEY_SALT", "test-salt")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 3318, cfg.Port)
	assert.Equal(t, DBSQLite, cfg.DatabaseType)
	assert.Equal(t, "myballot.db", cfg.DatabaseURL)
	assert.Equal(t, "America/Chicago", cfg.Timezone)
	assert.Equal(t, 30*time.Minute, cfg.ReminderFlowTTL)
	assert.Equal(t, "127.0.0.1:3318", cfg.Addr())
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "leveldb")
	t.Setenv("DEVICE_KEY_SALT", "test-salt")
	t.Setenv("REMINDER_FLOW_TTL", "5m")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, DBLevel, cfg.DatabaseType)
	assert.Equal(t, "myballot-leveldb", cfg.DatabaseURL)
	assert.Equal(t, 5*time.Minute, cfg.ReminderFlowTTL)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DEVICE_KEY_SALT", "env-salt")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-device-salt", "cli-salt"})
	require.NoError(t, err)

	// CLI should override env
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file:test.db", cfg.DatabaseURL)
	assert.Equal(t, "cli-salt", cfg.DeviceKeySalt)
}

func TestParseFlags_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing salt", nil, nil},
		{"postgres without url", map[string]string{"DEVICE_KEY_SALT": "s"}, []string{"-t", "postgres"}},
		{"unknown storage", map[string]string{"DEVICE_KEY_SALT": "s"}, []string{"-t", "mongo"}},
		{"bad timezone", map[string]string{"DEVICE_KEY_SALT": "s"}, []string{"-tz", "Mars/Olympus"}},
		{"bad log format", map[string]string{"DEVICE_KEY_SALT": "s"}, []string{"-log-format", "xml"}},
		{"bad port", map[string]string{"DEVICE_KEY_SALT": "s"}, []string{"-p", "70000"}},
		{"unknown flag", map[string]string{"DEVICE_KEY_SALT": "s"}, []string{"-admin-salt", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEVICE_KEY_SALT", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestConfigLocation(t *testing.T) {
	cfg := Config{Timezone: "America/Chicago"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Chicago", loc.String())
}
