package config

import (
	"log/slog"
	"testing"

	"frontdoor/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.HTTP.Port)
	assert.Equal(t, "", cfg.HTTP.Host)
	assert.Equal(t, ":5001", cfg.HTTP.Addr())
	assert.Equal(t, "templates", cfg.Template.Dir)
	assert.True(t, cfg.Debug)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("TEMPLATE_DIR", "/srv/templates")
	t.Setenv("DEBUG", "false")

	cfg, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.HTTP.Addr())
	assert.Equal(t, "/srv/templates", cfg.Template.Dir)
	assert.False(t, cfg.Debug)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestLoadConfig_UnparsableDebugKeepsDefault(t *testing.T) {
	t.Setenv("DEBUG", "maybe")

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := LoadDefault()
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ConfigurationError))
}

func TestConfigBuilder(t *testing.T) {
	cfg, err := NewConfigBuilder().
		WithHost("localhost").
		WithPort("0").
		WithTemplateDir("./testdata").
		WithDebug(false).
		WithLogLevel("warn").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:0", cfg.HTTP.Addr())
	assert.Equal(t, "./testdata", cfg.Template.Dir)
	assert.False(t, cfg.Debug)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())
}

func TestConfigBuilder_Validation(t *testing.T) {
	tests := []struct {
		name    string
		builder *ConfigBuilder
	}{
		{"empty port", NewConfigBuilder().WithPort("")},
		{"port out of range", NewConfigBuilder().WithPort("70000")},
		{"negative port", NewConfigBuilder().WithPort("-1")},
		{"empty template dir", NewConfigBuilder().WithTemplateDir("")},
		{"bad log level", NewConfigBuilder().WithLogLevel("loud")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.builder.Build()
			assert.Nil(t, cfg)
			assert.True(t, errors.IsType(err, errors.ConfigurationError))
		})
	}
}
