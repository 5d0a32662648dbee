package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"wcg/internal/platform/config"
)

// New returns a structured JSON logger using slog.
func New() *slog.Logger {
	return NewWithConfig(os.Stdout, config.Logging{Level: "info", Format: "json"})
}

// NewWithConfig builds a logger writing to w. Format "text" uses a colored
// tint handler for local runs; anything else logs JSON.
func NewWithConfig(w io.Writer, cfg config.Logging) *slog.Logger {
	level := ParseLevel(cfg.Level)
	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
