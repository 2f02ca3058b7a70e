package app

import (
	"errors"
	"fmt"
	"time"
)

// Report output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	TripsPath string   // .hcl file or directory
	Tokens    []string // cost flag, start, end; repeated

	// TokenOffset is the position of Tokens[0] in the command line, used to
	// label argument trips in messages.
	TokenOffset int

	Output    string
	LogFormat string
	LogLevel  string

	// Location is used to interpret dates. Nil means time.Local.
	Location *time.Location
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.TripsPath == "" && len(cfg.Tokens) == 0 {
		return nil, errors.New("no trips given: pass trip arguments or --trips")
	}

	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		return nil, fmt.Errorf("invalid output %q: must be 'text' or 'json'", cfg.Output)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	cfg.Tokens = append([]string(nil), cfg.Tokens...)
	return &cfg, nil
}
