package store

import "log/slog"

type EngineOption func(o *option)

type option struct {
	logger *slog.Logger
}

// WithLogger sets the logger the engine reports executed statements to.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *option) {
		o.logger = logger
	}
}
