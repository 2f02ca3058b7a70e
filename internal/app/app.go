package app

import (
	"io"
	"log/slog"

	"github.com/vk/perdiem/internal/config"
	"github.com/vk/perdiem/internal/tripinput"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	loader    config.Loader
	validator tripinput.Validator
}

// NewApp is the constructor for the main application. The report is written
// to outW and logs to logW. loader is only used when cfg.TripsPath is set.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		loader:    loader,
		validator: tripinput.Validator{Location: cfg.Location},
	}
}
