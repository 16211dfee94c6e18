// Package tdslog holds the logging contract of the gotds driver. Implement
// Logger to route driver logs into a custom logging framework.
package tdslog

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Level is a driver log level. Debug, Info, Warn and Error share their
// values with slog; Trace sits below Debug and Fatal above Error.
type Level int

// Levels understood by the driver loggers.
const (
	LevelTrace = Level(slog.LevelDebug - 4)
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
	LevelFatal = Level(slog.LevelError + 4)
	LevelOff   = Level(math.MaxInt)
)

var levelNames = []struct {
	level Level
	name  string
}{
	{LevelTrace, "TRACE"},
	{LevelDebug, "DEBUG"},
	{LevelInfo, "INFO"},
	{LevelWarn, "WARN"},
	{LevelError, "ERROR"},
	{LevelFatal, "FATAL"},
	{LevelOff, "OFF"},
}

// ParseLevel reads a level name as given in the log_level option or in
// connections.toml. Case and surrounding space are ignored, and "WARNING"
// is accepted for LevelWarn.
func ParseLevel(level string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(level))
	if name == "WARNING" {
		return LevelWarn, nil
	}
	for _, l := range levelNames {
		if l.name == name {
			return l.level, nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level: %s", level)
}

// LevelToString returns the option name of level.
func LevelToString(level Level) (string, error) {
	for _, l := range levelNames {
		if l.level == level {
			return l.name, nil
		}
	}
	return "", fmt.Errorf("unknown log level: %d", level)
}

func (l Level) String() string {
	if s, err := LevelToString(l); err == nil {
		return s
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Slog returns the slog level records of l are emitted at.
func (l Level) Slog() slog.Level {
	return slog.Level(l)
}
