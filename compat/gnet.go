// FILE: compat/gnet.go
package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/mgor/locust"
)

// GnetAdapter wraps a locust.Logger to implement gnet's
// logging.Logger interface.
type GnetAdapter struct {
	logger       *locust.Logger
	pipeline     *locust.Pipeline // for flushing before fatal exit
	fatalHandler func(msg string) // customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *locust.Logger, pipeline *locust.Pipeline, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger:   logger,
		pipeline: pipeline,
		fatalHandler: func(msg string) {
			os.Exit(1) // default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Debug("gnet: "+format, args...)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Info("gnet: "+format, args...)
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Warning("gnet: "+format, args...)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Error("gnet: "+format, args...)
}

// Fatalf logs at critical level and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Critical("gnet: %s", msg)

	// Ensure the record is delivered before exit
	if a.pipeline != nil {
		_ = a.pipeline.Flush(100 * time.Millisecond)
	}

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
