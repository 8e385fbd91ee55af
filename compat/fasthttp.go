// FILE: compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/mgor/locust"
)

// FastHTTPAdapter wraps a locust.Logger to implement fasthttp's Logger
// interface, so an embedded fasthttp server logs through the relay.
type FastHTTPAdapter struct {
	logger        *locust.Logger
	defaultLevel  int64
	levelDetector func(string) int64 // detect log level from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *locust.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  locust.LevelInfo,
		levelDetector: DetectLogLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != 0 {
			level = detected
		}
	}

	a.logger.Log(level, "fasthttp: %s", msg)
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return locust.LevelError
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return locust.LevelWarning
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return locust.LevelDebug
	}

	return locust.LevelInfo
}
