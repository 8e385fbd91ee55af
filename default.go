// FILE: default.go
package locust

import (
	"sync"
	"time"
)

// Process-wide pipeline wired by SetupLogging
var (
	defaultMu       sync.Mutex
	defaultPipeline *Pipeline
)

// SetupLogging wires the process-wide pipeline: console (or file, when
// logfile is non-empty) plus the plain console and ring buffer sinks,
// with the given minimum severity (case-insensitive) and relay queue
// capacity (0 uses the default of 10000). Calling it again tears down
// the previous pipeline, draining its queue first.
//
// Callers should arrange for ShutdownLogging to run at process exit so
// queued records are not lost.
func SetupLogging(loglevel string, logfile string, queueSize int64) error {
	level, err := ParseLevel(loglevel)
	if err != nil {
		return err
	}

	cfg := DefaultConfig()
	cfg.Level = level
	cfg.File = logfile
	if queueSize > 0 {
		cfg.QueueSize = queueSize
	}

	pipeline, err := NewPipeline(cfg)
	if err != nil {
		return err
	}
	pipeline.Start()

	defaultMu.Lock()
	previous := defaultPipeline
	defaultPipeline = pipeline
	defaultMu.Unlock()

	if previous != nil {
		return previous.Shutdown()
	}
	return nil
}

// ShutdownLogging drains and tears down the process-wide pipeline.
func ShutdownLogging(timeout ...time.Duration) error {
	defaultMu.Lock()
	pipeline := defaultPipeline
	defaultPipeline = nil
	defaultMu.Unlock()

	if pipeline == nil {
		return nil
	}
	return pipeline.Shutdown(timeout...)
}

// getDefault returns the process-wide pipeline, or nil before setup.
func getDefault() *Pipeline {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultPipeline
}

// GetLogs returns the most recent formatted log lines from the
// process-wide pipeline, oldest first. Returns nil before setup.
func GetLogs() []string {
	if p := getDefault(); p != nil {
		return p.GetLogs()
	}
	return nil
}

// Named returns a named logger on the process-wide pipeline, or nil
// before setup.
func Named(name string) *Logger {
	if p := getDefault(); p != nil {
		return p.Named(name)
	}
	return nil
}

// Default package-level functions that delegate to the root logger.
// They are no-ops before SetupLogging.

// Debug logs a message at debug level
func Debug(format string, args ...any) {
	if p := getDefault(); p != nil {
		p.Root().Debug(format, args...)
	}
}

// Info logs a message at info level
func Info(format string, args ...any) {
	if p := getDefault(); p != nil {
		p.Root().Info(format, args...)
	}
}

// Warning logs a message at warning level
func Warning(format string, args ...any) {
	if p := getDefault(); p != nil {
		p.Root().Warning(format, args...)
	}
}

// Error logs a message at error level
func Error(format string, args ...any) {
	if p := getDefault(); p != nil {
		p.Root().Error(format, args...)
	}
}

// Critical logs a message at critical level
func Critical(format string, args ...any) {
	if p := getDefault(); p != nil {
		p.Root().Critical(format, args...)
	}
}
