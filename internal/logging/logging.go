package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New builds a text-handler logger writing to w at the named level
// ("debug", "info", "warn", "error"). The logger is handed to the check
// pipeline explicitly; nothing installs process-global logging state.
func New(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler)
}
