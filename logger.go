// FILE: logger.go
package locust

import (
	"time"
)

// Logger is a named record producer. Emitting is cheap and never
// blocks: the record is snapshotted and handed to the relay, which
// either queues it or drops it under saturation. Formatting happens
// later, on the dispatcher goroutine.
type Logger struct {
	name     string
	level    int64
	pipeline *Pipeline
}

// Name returns the logger name.
func (l *Logger) Name() string {
	return l.name
}

// log builds the record snapshot and submits it to the relay.
func (l *Logger) log(level int64, fault *Fault, format string, args ...any) {
	if level < l.level {
		return
	}
	if l.pipeline.ShutdownCalled.Load() {
		return
	}

	l.pipeline.relay.Submit(Record{
		TimeStamp: time.Now(),
		Level:     level,
		Name:      l.name,
		Message:   format,
		Args:      args,
		Fault:     fault,
	})
}

// Debug logs a message at debug level
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, nil, format, args...)
}

// Info logs a message at info level
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, nil, format, args...)
}

// Warning logs a message at warning level
func (l *Logger) Warning(format string, args ...any) {
	l.log(LevelWarning, nil, format, args...)
}

// Error logs a message at error level
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, nil, format, args...)
}

// Critical logs a message at critical level
func (l *Logger) Critical(format string, args ...any) {
	l.log(LevelCritical, nil, format, args...)
}

// Log logs a message at an arbitrary level
func (l *Logger) Log(level int64, format string, args ...any) {
	l.log(level, nil, format, args...)
}
