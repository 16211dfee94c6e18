package tdslog

import (
	"context"
	"io"
	"log/slog"
)

// ClientLogContextHook is a client-defined hook that can be used to insert log
// fields based on the Context.
type ClientLogContextHook func(context.Context) string

// LogEntry allows for logging using a snapshot of field values.
type LogEntry interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	Trace(msg string)
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Logger abstracts away the underlying logging mechanism of the driver.
type Logger interface {
	LogEntry
	WithField(key string, value interface{}) LogEntry
	WithFields(fields map[string]any) LogEntry
	WithContext(ctx context.Context) LogEntry

	SetLogLevel(level string) error
	GetLogLevel() string
	SetOutput(output io.Writer)
}

// SlogLogger is an optional interface for loggers backed by log/slog.
// Type-assert the driver logger to replace its handler:
//
//	if l, ok := gotds.GetLogger().(tdslog.SlogLogger); ok {
//	    _ = l.SetHandler(slog.NewJSONHandler(os.Stdout, nil))
//	}
type SlogLogger interface {
	SetHandler(handler slog.Handler) error
}
