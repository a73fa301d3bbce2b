package log

import (
	"io"
	"log/slog"
)

// New returns a slog.Logger writing to w. stdout carries data; logs
// should always go to stderr (the caller passes it in).
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
