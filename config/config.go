package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"frontdoor/internal/errors"
)

type Config struct {
	HTTP     HTTPConfig
	Template TemplateConfig
	Log      LogConfig
	Debug    bool // Development mode: verbose errors and template auto-reload
}

type HTTPConfig struct {
	Host string // Host to bind, empty means all interfaces
	Port string // Port to listen on
}

type TemplateConfig struct {
	Dir string // Directory holding page templates
}

type LogConfig struct {
	Level string // Overrides the level implied by Debug
}

// Addr returns the listen address for the HTTP server
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// LoadDefault returns the default configuration with environment overrides applied
func LoadDefault() (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{
			Host: getEnv("HTTP_HOST", ""),
			Port: getEnv("HTTP_PORT", "5001"),
		},
		Template: TemplateConfig{
			Dir: getEnv("TEMPLATE_DIR", "templates"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", ""),
		},
		Debug: getEnvBool("DEBUG", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used to start the server
func (c *Config) Validate() error {
	if c.HTTP.Port == "" {
		return errors.NewConfigurationError("validate_config", fmt.Errorf("http port cannot be empty"))
	}
	port, err := strconv.Atoi(c.HTTP.Port)
	if err != nil || port < 0 || port > 65535 {
		return errors.NewConfigurationError("validate_config", fmt.Errorf("invalid http port %q", c.HTTP.Port)).
			WithContext("port", c.HTTP.Port)
	}
	if c.Template.Dir == "" {
		return errors.NewConfigurationError("validate_config", fmt.Errorf("template directory cannot be empty"))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return errors.NewConfigurationError("validate_config", err)
	}
	return nil
}

// LogLevel returns the slog level for this configuration
func (c *Config) LogLevel() slog.Level {
	if level, err := parseLevel(c.Log.Level); err == nil && c.Log.Level != "" {
		return level
	}
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// getEnv returns the value of the environment variable key if it exists, otherwise it returns the fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
