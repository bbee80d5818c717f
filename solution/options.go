package solution

import (
	"log/slog"
	"time"
)

// Option configures a run via functional arguments.
type Option func(*Options)

// Options holds the collaborators of a run.
type Options struct {
	// Logger receives phase transitions (debug) and the final report (info).
	Logger *slog.Logger

	// Clock is read around each phase to measure its duration.
	Clock func() time.Time

	// Name labels the solution in reports and log lines.
	Name string
}

// DefaultOptions returns Options with:
//   - slog.Default() as logger
//   - time.Now as clock
//   - "default" as solution name
func DefaultOptions() Options {
	return Options{
		Logger: slog.Default(),
		Clock:  time.Now,
		Name:   "default",
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClock replaces time.Now, mainly for deterministic tests. A nil clock
// is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}

// WithName sets the solution label.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
