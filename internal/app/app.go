package app

import (
	"io"
	"log/slog"

	"github.com/vk/curricula/internal/report"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	errW     io.Writer
	logger   *slog.Logger
	registry *report.Registry
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and renderer
// registry.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		errW:     errW,
		logger:   logger,
		registry: report.DefaultRegistry(),
		config:   cfg,
	}
}

// Registry returns the application's renderer registry. Primarily for testing.
func (a *App) Registry() *report.Registry {
	return a.registry
}
