package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// NewStreamLogger creates a logger writing entries in the given format
func NewStreamLogger(writer io.Writer, level Level, format Format) *StreamLogger {
	return &StreamLogger{
		writer: writer,
		format: format,
		level:  &levelVar{level: level},
		fields: make([]Field, 0),
		mu:     &sync.Mutex{},
	}
}

// NewJSONLogger creates a new JSON logger
func NewJSONLogger(writer io.Writer, level Level) *StreamLogger {
	return NewStreamLogger(writer, level, JSONFormat)
}

// log is the internal logging method
func (l *StreamLogger) log(level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	// Build field map, call-site fields win over pre-set ones
	fieldMap := make(map[string]any, len(l.fields)+len(fields))
	for _, f := range l.fields {
		fieldMap[f.Key] = f.Value
	}
	for _, f := range fields {
		fieldMap[f.Key] = f.Value
	}

	now := time.Now()

	var line []byte
	switch l.format {
	case TextFormat:
		line = renderText(now, level, msg, fieldMap)
	default:
		entry := LogEntry{
			Time:    now.Format(time.RFC3339Nano),
			Level:   level.String(),
			Message: msg,
		}
		if len(fieldMap) > 0 {
			entry.Fields = fieldMap
		}

		data, err := json.Marshal(entry)
		if err != nil {
			// Fallback to simple text logging if JSON marshal fails
			line = []byte(fmt.Sprintf("[ERROR] Failed to marshal log entry: %v", err))
		} else {
			line = data
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer.Write(append(line, '\n'))
}

func renderText(now time.Time, level Level, msg string, fields map[string]any) []byte {
	var b strings.Builder
	b.WriteString(now.Format("15:04:05.000"))
	b.WriteByte(' ')
	fmt.Fprintf(&b, "%-5s", level.String())
	b.WriteByte(' ')
	b.WriteString(msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return []byte(b.String())
}

// Debug logs a debug-level message
func (l *StreamLogger) Debug(msg string, fields ...Field) {
	l.log(DebugLevel, msg, fields...)
}

// Info logs an info-level message
func (l *StreamLogger) Info(msg string, fields ...Field) {
	l.log(InfoLevel, msg, fields...)
}

// Warn logs a warning-level message
func (l *StreamLogger) Warn(msg string, fields ...Field) {
	l.log(WarnLevel, msg, fields...)
}

// Error logs an error-level message
func (l *StreamLogger) Error(msg string, fields ...Field) {
	l.log(ErrorLevel, msg, fields...)
}

// With creates a child logger with the given fields pre-set.
// The child shares the writer, lock and level of its parent.
func (l *StreamLogger) With(fields ...Field) Logger {
	newFields := make([]Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &StreamLogger{
		writer: l.writer,
		format: l.format,
		level:  l.level,
		fields: newFields,
		mu:     l.mu,
	}
}

// Enabled reports whether level passes the logger's threshold
func (l *StreamLogger) Enabled(level Level) bool {
	return level >= l.GetLevel()
}

// SetLevel sets the minimum log level
func (l *StreamLogger) SetLevel(level Level) {
	l.level.mu.Lock()
	defer l.level.mu.Unlock()
	l.level.level = level
}

// GetLevel returns the current log level
func (l *StreamLogger) GetLevel() Level {
	l.level.mu.RLock()
	defer l.level.mu.RUnlock()
	return l.level.level
}

// StartTimer begins timing an operation
func StartTimer(logger Logger, msg string, fields ...Field) *TimedOperation {
	return &TimedOperation{
		logger: logger,
		msg:    msg,
		start:  time.Now(),
		fields: fields,
	}
}

// End logs the operation with its duration
func (t *TimedOperation) End(fields ...Field) {
	elapsed := time.Since(t.start)
	all := append(append(t.fields[:len(t.fields):len(t.fields)], fields...), Latency(elapsed))
	t.logger.Info(t.msg, all...)
}

// EndError logs the operation as an error with its duration
func (t *TimedOperation) EndError(err error) {
	elapsed := time.Since(t.start)
	all := append(t.fields[:len(t.fields):len(t.fields)], Latency(elapsed), Error(err))
	t.logger.Error(t.msg, all...)
}
