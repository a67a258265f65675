package app

import (
	"io"
	"log/slog"

	"frontdoor/config"
	"frontdoor/handlers"
	"frontdoor/render"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *slog.Logger
	Renderer *render.Renderer
}

// NewLogger creates the JSON logger used across the application
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))
}

// NewContainer creates and wires up all dependencies
func NewContainer(cfg *config.Config, logger *slog.Logger) *Container {
	renderer := render.NewRenderer(cfg.Template.Dir, logger)

	if cfg.Debug {
		if err := renderer.EnableAutoReload(); err != nil {
			logger.Warn("Template auto-reload disabled", slog.String("error", err.Error()))
		} else {
			logger.Debug("Template auto-reload enabled", slog.String("dir", cfg.Template.Dir))
		}
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Renderer: renderer,
	}
}

// Handlers returns the dependencies required by the HTTP handlers
func (c *Container) Handlers() *handlers.Container {
	return &handlers.Container{
		Config:   c.Config,
		Renderer: c.Renderer,
		Logger:   c.Logger,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Renderer != nil {
		return c.Renderer.Close()
	}
	return nil
}
