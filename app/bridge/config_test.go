package bridge_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailbridge/app/bridge"
	"github.com/dmitrymomot/mailbridge/core/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USERNAME", "user")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("SMTP_FROM", "Bridge <noreply@example.com>")
}

func TestConfig_Defaults(t *testing.T) {
	setRequired(t)

	var cfg bridge.Config
	require.NoError(t, config.Parse(&cfg))

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, uint16(587), cfg.SMTP.Port)
	assert.True(t, cfg.SMTP.UseTLS())
	assert.Equal(t, "noreply@example.com", cfg.SMTP.From.Address)
	assert.Equal(t, 30*time.Second, cfg.SMTP.Timeout)
	assert.Equal(t, "mailbridge", cfg.AppName)
	assert.Equal(t, "production", cfg.Env)
	assert.Empty(t, cfg.LogLevel)
	assert.True(t, cfg.MetricsEnabled)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestConfig_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_BIND", "0.0.0.0:9000")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_TLS", "off")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	var cfg bridge.Config
	require.NoError(t, config.Parse(&cfg))

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, uint16(465), cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.UseTLS())
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
}

func TestConfig_UnrecognizedTLSKeepsEncryption(t *testing.T) {
	setRequired(t)
	t.Setenv("SMTP_TLS", "sometimes")

	var cfg bridge.Config
	require.NoError(t, config.Parse(&cfg))
	assert.True(t, cfg.SMTP.UseTLS())
}

func TestConfig_Errors(t *testing.T) {
	t.Run("every missing variable is named", func(t *testing.T) {
		for _, key := range []string{"SMTP_HOST", "SMTP_USERNAME", "SMTP_PASSWORD", "SMTP_FROM"} {
			t.Setenv(key, "")
		}

		var cfg bridge.Config
		err := config.Parse(&cfg)

		require.ErrorIs(t, err, config.ErrMissingVariable)
		for _, key := range []string{"SMTP_HOST", "SMTP_USERNAME", "SMTP_PASSWORD", "SMTP_FROM"} {
			assert.Contains(t, err.Error(), key)
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SMTP_PORT", "70000")

		var cfg bridge.Config
		err := config.Parse(&cfg)

		require.ErrorIs(t, err, config.ErrInvalidValue)
		assert.Contains(t, err.Error(), "SMTP_PORT")
	})

	t.Run("invalid sender", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SMTP_FROM", "bad")

		var cfg bridge.Config
		err := config.Parse(&cfg)

		require.ErrorIs(t, err, config.ErrInvalidValue)
		assert.Contains(t, err.Error(), "SMTP_FROM")
	})
}
