// Package logging builds the charmbracelet logger used for progress and
// diagnostic output.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Config controls logger construction.
type Config struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level  string
	Output io.Writer
	// JSON switches to one JSON object per line.
	JSON bool
}

// ParseLevel maps a level name to a charmbracelet level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New returns a logger for cfg. Timestamps are omitted; each run is short
// and messages read as progress notices.
func New(cfg Config) *log.Logger {
	logger := log.NewWithOptions(cfg.Output, log.Options{
		ReportTimestamp: false,
		Level:           ParseLevel(cfg.Level),
	})
	if cfg.JSON {
		logger.SetFormatter(log.JSONFormatter)
	} else {
		logger.SetFormatter(log.TextFormatter)
	}
	return logger
}
