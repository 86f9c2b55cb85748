package core

import (
	"context"
	"fmt"
	"log/slog"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// slogLogger adapts a structured logger to the Printf-style Logger
type slogLogger struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogLogger returns a Logger that writes each message to logger at the given level
func NewSlogLogger(logger *slog.Logger, level slog.Level) Logger {
	return &slogLogger{logger: logger, level: level}
}

// Printf formats the message and emits it as a single slog record
func (l *slogLogger) Printf(format string, args ...interface{}) {
	l.logger.Log(context.Background(), l.level, fmt.Sprintf(format, args...))
}

// NopLogger discards all messages
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(format string, args ...interface{}) {}
