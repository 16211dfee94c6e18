package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dparnell/gotds/tdslog"
)

// Skip depths for source location. A call through Proxy passes
// Proxy -> secretMaskingLogger -> rawLogger, an entry call passes
// secretMaskingEntry -> slogEntry.
const (
	loggerSkip = 3
	entrySkip  = 2
)

// rawLogger implements Logger using slog
type rawLogger struct {
	mu      sync.Mutex
	inner   *slog.Logger
	handler slog.Handler
	level   tdslog.Level
	// levelVar is shared with every handler so SetLogLevel applies to
	// entries created before the change.
	levelVar *slog.LevelVar
	output   io.Writer
}

var _ Logger = (*rawLogger)(nil)

func newRawLogger() *rawLogger {
	log := &rawLogger{
		level:    tdslog.LevelInfo,
		levelVar: &slog.LevelVar{},
		output:   os.Stderr,
	}
	log.levelVar.Set(slog.Level(tdslog.LevelInfo))
	log.handler = slog.NewTextHandler(log.output, createOpts(log.levelVar))
	log.inner = slog.New(log.handler)
	return log
}

func createOpts(level slog.Leveler) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				if t, ok := a.Value.Any().(time.Time); ok {
					return slog.String(slog.TimeKey, t.Format(time.RFC3339Nano))
				}
			case slog.LevelKey:
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					if s, err := tdslog.LevelToString(tdslog.Level(lvl)); err == nil {
						return slog.String(slog.LevelKey, s)
					}
				}
			case slog.SourceKey:
				if src, ok := a.Value.Any().(*slog.Source); ok {
					return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", path.Base(src.File), src.Line))
				}
			}
			return a
		},
	}
}

func (log *rawLogger) SetLogLevel(level string) error {
	parsed, err := tdslog.ParseLevel(strings.ToUpper(level))
	if err != nil {
		return fmt.Errorf("error while setting log level. %v", err)
	}
	log.mu.Lock()
	defer log.mu.Unlock()
	log.level = parsed
	log.levelVar.Set(slog.Level(parsed))
	return nil
}

func (log *rawLogger) GetLogLevel() string {
	log.mu.Lock()
	defer log.mu.Unlock()
	if s, err := tdslog.LevelToString(log.level); err == nil {
		return s
	}
	return "unknown"
}

func (log *rawLogger) SetOutput(output io.Writer) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.output = output
	log.handler = slog.NewTextHandler(output, createOpts(log.levelVar))
	log.inner = slog.New(log.handler)
}

// SetHandler replaces the slog handler. Level filtering still applies.
func (log *rawLogger) SetHandler(handler slog.Handler) error {
	if handler == nil {
		return fmt.Errorf("slog handler cannot be nil")
	}
	log.mu.Lock()
	defer log.mu.Unlock()
	log.handler = &levelHandler{inner: handler, level: log.levelVar}
	log.inner = slog.New(log.handler)
	return nil
}

func (log *rawLogger) current() *slog.Logger {
	log.mu.Lock()
	defer log.mu.Unlock()
	return log.inner
}

func (log *rawLogger) logWithSkip(skip int, level tdslog.Level, msg string) {
	emit(log.current(), skip+1, level, msg)
}

// emit writes one record, skipping 'skip' frames above itself for the source location.
func emit(l *slog.Logger, skip int, level tdslog.Level, msg string) {
	if level == tdslog.LevelOff || !l.Enabled(context.Background(), slog.Level(level)) {
		return
	}
	var pcs [1]uintptr
	// +2: runtime.Callers itself + emit
	runtime.Callers(skip+2, pcs[:])
	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	_ = l.Handler().Handle(context.Background(), r)
}

func (log *rawLogger) Tracef(format string, args ...interface{}) {
	log.logWithSkip(loggerSkip, tdslog.LevelTrace, fmt.Sprintf(format, args...))
}

func (log *rawLogger) Debugf(format string, args ...interface{}) {
	log.logWithSkip(loggerSkip, tdslog.LevelDebug, fmt.Sprintf(format, args...))
}

func (log *rawLogger) Infof(format string, args ...interface{}) {
	log.logWithSkip(loggerSkip, tdslog.LevelInfo, fmt.Sprintf(format, args...))
}

func (log *rawLogger) Warnf(format string, args ...interface{}) {
	log.logWithSkip(loggerSkip, tdslog.LevelWarn, fmt.Sprintf(format, args...))
}

func (log *rawLogger) Errorf(format string, args ...interface{}) {
	log.logWithSkip(loggerSkip, tdslog.LevelError, fmt.Sprintf(format, args...))
}

func (log *rawLogger) Trace(msg string) { log.logWithSkip(loggerSkip, tdslog.LevelTrace, msg) }
func (log *rawLogger) Debug(msg string) { log.logWithSkip(loggerSkip, tdslog.LevelDebug, msg) }
func (log *rawLogger) Info(msg string)  { log.logWithSkip(loggerSkip, tdslog.LevelInfo, msg) }
func (log *rawLogger) Warn(msg string)  { log.logWithSkip(loggerSkip, tdslog.LevelWarn, msg) }
func (log *rawLogger) Error(msg string) { log.logWithSkip(loggerSkip, tdslog.LevelError, msg) }

func (log *rawLogger) WithField(key string, value interface{}) LogEntry {
	return &slogEntry{logger: log.current().With(slog.Any(key, value))}
}

func (log *rawLogger) WithFields(fields map[string]any) LogEntry {
	attrs := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		attrs = append(attrs, k, v)
	}
	return &slogEntry{logger: log.current().With(attrs...)}
}

func (log *rawLogger) WithContext(ctx context.Context) LogEntry {
	attrs := extractContextFields(ctx)
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return &slogEntry{logger: log.current().With(args...)}
}

// slogEntry implements LogEntry over a slog.Logger carrying extra attributes.
type slogEntry struct {
	logger *slog.Logger
}

var _ LogEntry = (*slogEntry)(nil)

func (e *slogEntry) Tracef(format string, args ...interface{}) {
	emit(e.logger, entrySkip, tdslog.LevelTrace, fmt.Sprintf(format, args...))
}

func (e *slogEntry) Debugf(format string, args ...interface{}) {
	emit(e.logger, entrySkip, tdslog.LevelDebug, fmt.Sprintf(format, args...))
}

func (e *slogEntry) Infof(format string, args ...interface{}) {
	emit(e.logger, entrySkip, tdslog.LevelInfo, fmt.Sprintf(format, args...))
}

func (e *slogEntry) Warnf(format string, args ...interface{}) {
	emit(e.logger, entrySkip, tdslog.LevelWarn, fmt.Sprintf(format, args...))
}

func (e *slogEntry) Errorf(format string, args ...interface{}) {
	emit(e.logger, entrySkip, tdslog.LevelError, fmt.Sprintf(format, args...))
}

func (e *slogEntry) Trace(msg string) { emit(e.logger, entrySkip, tdslog.LevelTrace, msg) }
func (e *slogEntry) Debug(msg string) { emit(e.logger, entrySkip, tdslog.LevelDebug, msg) }
func (e *slogEntry) Info(msg string)  { emit(e.logger, entrySkip, tdslog.LevelInfo, msg) }
func (e *slogEntry) Warn(msg string)  { emit(e.logger, entrySkip, tdslog.LevelWarn, msg) }
func (e *slogEntry) Error(msg string) { emit(e.logger, entrySkip, tdslog.LevelError, msg) }

// levelHandler applies the driver level to a user supplied handler.
type levelHandler struct {
	inner slog.Handler
	level slog.Leveler
}

func (h *levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level() && h.inner.Enabled(ctx, level)
}

func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.inner.Handle(ctx, r)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{inner: h.inner.WithAttrs(attrs), level: h.level}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{inner: h.inner.WithGroup(name), level: h.level}
}
