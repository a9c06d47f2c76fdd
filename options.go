package parallel

import "log/slog"

// SessionOption configures a Session during creation.
// Use functional options to customize Session behavior.
//
// Example:
//
//	s := parallel.NewSession(cfg, parallel.WithLogger(logger))
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	logger *slog.Logger
}

// defaultSessionOptions returns the default session options.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		logger: nil, // Falls back to the package Logger at use time
	}
}

// WithLogger sets the logger used by a single Session instead of the
// package logger set with SetLogger.
func WithLogger(l *slog.Logger) SessionOption {
	return func(o *sessionOptions) {
		o.logger = l
	}
}
