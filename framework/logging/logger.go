// Package logging builds the application logger from configuration.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/km-arc/expense-share/framework/config"
)

// New creates a logger writing to stderr, configured from cfg.Log.
func New(cfg *config.Config) *log.Logger {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          strings.ToLower(cfg.App.Name),
		Level:           level,
		ReportTimestamp: true,
		Formatter:       formatter(cfg.Log.Format),
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

func formatter(name string) log.Formatter {
	switch strings.ToLower(name) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
