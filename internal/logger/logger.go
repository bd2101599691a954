package logger

import (
	"io"
	"log/slog"
)

// NewWithWriter creates a debug-level text logger on w, or a discarding one
// everything is discarded unless debug is set
func NewWithWriter(w io.Writer, debug bool) *slog.Logger {
	if !debug || w == nil {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
