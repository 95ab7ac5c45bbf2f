// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Request-scoped loggers travel through a
// context.Context so that store and service code log with the caller's trace ID.
package logger
