package logger

import (
	"io"
	"log/slog"
	"os"

	"BattleFS/internal/platform/config"
)

// New builds the process logger. Logs go to stderr so the console can keep
// stdout for file contents.
func New(cfg config.Config) *slog.Logger {
	return NewWithWriter(os.Stderr, cfg.LogLevel)
}

func NewWithWriter(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
