// Package logger provides structured logging for the gateway.
//
// It configures Go's standard library log/slog package with a JSON handler and
// a configurable level, and carries request-scoped loggers (tagged with the
// trace id) through context.Context.
package logger
