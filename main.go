package main

import (
	"log/slog"
	"os"

	"frontdoor/app"
	"frontdoor/config"
)

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg, os.Stdout)

	application := app.NewApplication(cfg, logger)
	if err := application.Run(); err != nil {
		logger.Error("Application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
