package solution

import (
	"io"
	"log/slog"
	"sync"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel maps a level name ("debug", "info", "warn", "error") to its
// slog.Level. ok is false for any other name.
func ParseLevel(name string) (level slog.Level, ok bool) {
	level, ok = levels[name]
	return level, ok
}

// KnownFormat reports whether NewLogger has a handler named format.
func KnownFormat(format string) bool {
	return format == "text" || format == "json"
}

// NewLogger creates a slog.Logger writing to w. Unknown level names mean
// info; format "json" selects the JSON handler, anything else text. It does
// not touch the global logger.
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	lvl, ok := ParseLevel(level)
	if !ok {
		lvl = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

var (
	initOnce   sync.Once
	initLogger *slog.Logger
)

// InitLogger installs a NewLogger(level, format, w) as the process-wide
// default logger. Only the first call has any effect; every call returns the
// installed logger.
func InitLogger(level, format string, w io.Writer) *slog.Logger {
	initOnce.Do(func() {
		initLogger = NewLogger(level, format, w)
		slog.SetDefault(initLogger)
	})
	return initLogger
}
