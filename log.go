package gotds

import (
	loggerinternal "github.com/dparnell/gotds/internal/logger"
	"github.com/dparnell/gotds/tdslog"
)

type contextKey string

// ConnectionIDKey is the context key of the connection id.
const ConnectionIDKey contextKey = "LOG_CONNECTION_ID"

// StatementIDKey is the context key of the statement id.
const StatementIDKey contextKey = "LOG_STATEMENT_ID"

func init() {
	SetLogKeys(ConnectionIDKey, StatementIDKey)
	_ = logger.SetLogLevel("error")
}

type (
	// ClientLogContextHook is a client-defined hook that can be used to insert log
	// fields based on the Context.
	ClientLogContextHook = tdslog.ClientLogContextHook
	// LogEntry allows for logging using a snapshot of field values.
	LogEntry = tdslog.LogEntry
	// Logger is the driver logging interface.
	Logger = tdslog.Logger
)

// SetLogKeys sets the context keys to be written to logs when logger.WithContext is used.
func SetLogKeys(keys ...contextKey) {
	ikeys := make([]interface{}, len(keys))
	for i, k := range keys {
		ikeys[i] = k
	}
	loggerinternal.SetLogKeys(ikeys)
}

// RegisterLogContextHook registers a hook that can be used to extract fields
// from the Context and associated with log messages using the provided key.
func RegisterLogContextHook(contextKey string, ctxExtractor ClientLogContextHook) {
	loggerinternal.RegisterLogContextHook(contextKey, ctxExtractor)
}

var logger Logger = loggerinternal.NewProxy()

// SetLogger replaces the driver logger. The provided logger is always wrapped with secret masking.
func SetLogger(inLogger Logger) error {
	return loggerinternal.SetLogger(inLogger)
}

// GetLogger returns the driver logger.
func GetLogger() Logger {
	return logger
}

// CreateDefaultLogger creates a new slog based logger with secret masking.
// It does not modify the driver logger; pass it to SetLogger for that.
func CreateDefaultLogger() Logger {
	return loggerinternal.CreateDefaultLogger()
}
