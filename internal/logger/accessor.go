package logger

import (
	"errors"
	"sync"
)

var (
	loggerAccessorMu sync.Mutex
	globalLogger     Logger
)

// GetLogger returns the global logger for use by internal packages
func GetLogger() Logger {
	loggerAccessorMu.Lock()
	defer loggerAccessorMu.Unlock()

	return globalLogger
}

// SetLogger installs providedLogger as the global logger, always wrapped with
// secret masking. An already masked logger is unwrapped first so masking is
// never applied twice.
func SetLogger(providedLogger Logger) error {
	if providedLogger == nil {
		return errors.New("logger cannot be nil")
	}
	if _, isProxy := providedLogger.(*Proxy); isProxy {
		return errors.New("cannot set Proxy as raw logger - it would create infinite recursion")
	}

	raw := providedLogger
	if masked, ok := raw.(*secretMaskingLogger); ok {
		raw = masked.inner
	}

	loggerAccessorMu.Lock()
	defer loggerAccessorMu.Unlock()
	globalLogger = newSecretMaskingLogger(raw)
	return nil
}

// CreateDefaultLogger creates a new slog based logger wrapped with secret masking.
// It does not touch the global logger.
func CreateDefaultLogger() Logger {
	return newSecretMaskingLogger(newRawLogger())
}

func init() {
	globalLogger = CreateDefaultLogger()
}
