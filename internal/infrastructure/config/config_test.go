package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Shamsi", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "Asia/Tehran", cfg.Calendar.DefaultZone)
	assert.Equal(t, "fa", cfg.Calendar.Digits)
	assert.Equal(t, "Y/m/d H:i:s", cfg.Calendar.DefaultLayout)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "localhost:6379", cfg.Cache.GetAddr())
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.App.IsDevelopment())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("CALENDAR_DEFAULT_ZONE", "UTC")
	t.Setenv("CALENDAR_DIGITS", "en")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("APP_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9091, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:9091", cfg.Server.GetAddr())
	assert.Equal(t, "UTC", cfg.Calendar.DefaultZone)
	assert.Equal(t, "en", cfg.Calendar.Digits)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.App.IsProduction())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		msg  string
	}{
		{"port out of range", "SERVER_PORT", "70000", "server port"},
		{"unknown zone", "CALENDAR_DEFAULT_ZONE", "Nowhere/Land", "calendar default zone"},
		{"unknown digits", "CALENDAR_DIGITS", "!!", "calendar digits"},
		{"unknown log format", "LOG_FORMAT", "xml", "logger format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
