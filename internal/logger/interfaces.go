package logger

import (
	"github.com/dparnell/gotds/tdslog"
)

// Re-export types from tdslog to avoid circular dependencies
// while maintaining a clean internal API
type (
	LogEntry             = tdslog.LogEntry
	Logger               = tdslog.Logger
	ClientLogContextHook = tdslog.ClientLogContextHook
)
