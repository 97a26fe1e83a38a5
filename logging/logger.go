package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

type correlationKey struct{}

// WithCorrelationID returns ctx carrying id. Entries logged with it include
// the id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationIDFromContext returns the id stored by WithCorrelationID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// EnsureCorrelationID keeps an existing id or adds a random UUID.
func EnsureCorrelationID(ctx context.Context) context.Context {
	if CorrelationIDFromContext(ctx) != "" {
		return ctx
	}
	return WithCorrelationID(ctx, uuid.NewString())
}

// Logger writes structured entries as JSON lines.
type Logger struct {
	config Config
	fields map[string]any
	out    *syncWriter
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) writeLine(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, string(data))
}

// New creates a Logger from config.
func New(config Config) (*Logger, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Logger{
		config: config,
		fields: make(map[string]any),
		out:    &syncWriter{w: config.Output},
	}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	config := DefaultConfig()
	config.Output = io.Discard
	config.MinLevel = LevelError + 1
	l, _ := New(config)
	return l
}

// Debug logs at debug level.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelDebug, msg, fields...)
}

// Info logs at info level.
func (l *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelInfo, msg, fields...)
}

// Warn logs at warn level.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelWarn, msg, fields...)
}

// Error logs at error level.
func (l *Logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelError, msg, fields...)
}

// Enabled reports whether entries at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.config.MinLevel
}

func (l *Logger) log(ctx context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	output := map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"level":     level.String(),
		"message":   msg,
		"service":   l.config.ServiceName,
	}
	if id := CorrelationIDFromContext(ctx); id != "" {
		output["correlation_id"] = id
	}

	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = RedactSensitive(f.Key, f.Value)
	}
	if len(merged) > 0 {
		output["fields"] = merged
	}

	data, err := json.Marshal(output)
	if err != nil {
		data, _ = json.Marshal(map[string]any{
			"level":   LevelError.String(),
			"message": "cannot encode log entry",
			"error":   err.Error(),
		})
	}
	l.out.writeLine(data)
}

// With returns a new logger with additional fields.
func (l *Logger) With(fields ...Field) *Logger {
	newFields := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = RedactSensitive(f.Key, f.Value)
	}
	return &Logger{
		config: l.config,
		fields: newFields,
		out:    l.out,
	}
}
