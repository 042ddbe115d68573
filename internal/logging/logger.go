// Package logging defines the structured-logging interface shared by the
// userdash binaries and its log/slog implementation.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Warn(ctx, "forced logout", "route", "/profile", "error", err)
type Logger interface {
	// Debug logs navigation and request tracing details.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but recoverable conditions, e.g. a rejected session.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures. This is the diagnostic channel for discarded
	// profile updates.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
