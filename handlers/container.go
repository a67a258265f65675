package handlers

import (
	"log/slog"

	"frontdoor/config"
	"frontdoor/render"
)

// Container holds dependencies for handlers
type Container struct {
	Config   *config.Config
	Renderer *render.Renderer
	Logger   *slog.Logger
}
