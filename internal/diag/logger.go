package diag

import (
	"io"
	"log/slog"
	"os"
)

// DefaultDebugLog is used when DEBUG is set and no log file is configured.
const DefaultDebugLog = "rangeslider-debug.log"

// LogPath returns the log file to open: the configured path, or
// DefaultDebugLog when DEBUG is set. Empty means logging is off.
func LogPath(configured string) string {
	if configured == "" && os.Getenv("DEBUG") != "" {
		return DefaultDebugLog
	}
	return configured
}

// NewLogger returns a debug-level text logger on w, or a discarding logger
// when w is nil.
func NewLogger(w io.Writer) *slog.Logger {
	if w == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// OpenLogger opens the log file at LogPath(configured) for appending. The
// returned closer is never nil.
func OpenLogger(configured string) (*slog.Logger, io.Closer, error) {
	path := LogPath(configured)
	if path == "" {
		return NewLogger(nil), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return NewLogger(f), f, nil
}
