package app

import (
	"io"
	"log/slog"
)

// NewLogger returns a slog.Logger writing to w, JSON or text per cfg.
// Unknown levels fall back to warn.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	format := "text"
	if cfg != nil {
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			level = slog.LevelWarn
		}
		format = cfg.LogFormat
	}
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
