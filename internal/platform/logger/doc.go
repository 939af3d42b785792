// Package logger configures the process-wide structured JSON logger on top
// of log/slog and carries request-scoped loggers through contexts so trace
// IDs survive across layer boundaries.
package logger
