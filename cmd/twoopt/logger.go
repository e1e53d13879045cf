package main

import (
	"io"
	"log/slog"
	"strings"
)

// Logger wraps slog.Logger with the field names used across the run.
type Logger struct {
	*slog.Logger
}

// NewLogger writes text or JSON records at or above level to w.
func NewLogger(w io.Writer, level slog.Level, json bool) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return &Logger{Logger: slog.New(h)}
}

// WithRestart tags records with a restart index.
func (l *Logger) WithRestart(restart int) *Logger {
	return &Logger{Logger: l.Logger.With("restart", restart)}
}

// ParseLevel accepts debug, info, warn or error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(strings.TrimSpace(s)))

	return lvl, err
}
