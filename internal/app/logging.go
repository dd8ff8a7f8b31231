package app

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

// newLogger creates a text logger at the named level. Unknown levels fall
// back to WARN so that regular runs stay quiet.
func newLogger(level string, dest io.Writer) *slog.Logger {
	if dest == nil {
		dest = os.Stderr
	}

	logLevel := slog.LevelWarn
	switch strings.ToUpper(level) {
	case DEBUG:
		logLevel = slog.LevelDebug
	case INFO:
		logLevel = slog.LevelInfo
	case ERROR:
		logLevel = slog.LevelError
	}

	handler := slog.NewTextHandler(dest, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(handler)
}
