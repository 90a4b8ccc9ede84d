package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// SlogLevel parses the configured level name.
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, ErrInvalid)
	}
	return lvl, nil
}

// NewLogger builds a logger writing to w. verbose forces debug level.
func (l Log) NewLogger(w io.Writer, verbose bool) *slog.Logger {
	lvl, err := l.SlogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
