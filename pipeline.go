// FILE: pipeline.go
package locust

import (
	"sync"
	"sync/atomic"
	"time"
)

// Pipeline owns the full delivery chain: the sink routes, the bounded
// relay in front of them, and the ring buffer behind the log reader
// sink. Producers reach it through named Loggers; external callers
// read recent lines through GetLogs.
type Pipeline struct {
	currentConfig atomic.Value // stores *Config
	relay         *Relay
	ring          *RingBuffer
	file          *fileSink // nil when no file path was configured

	loggers sync.Map // name -> *Logger
	initMu  sync.Mutex

	ShutdownCalled atomic.Bool
}

// NewPipeline builds the routing table described by cfg and the relay
// over it. The returned pipeline is wired but idle; call Start to
// launch the dispatcher.
//
// Routing: the ring buffer sink receives everything; the plain console
// sink receives only the statistics logger; the primary sink (console,
// or the file when a path is configured — mutually exclusive, not
// additive) receives everything else.
func NewPipeline(cfg *Config) (*Pipeline, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	defaultFormatter := NewFormatter(TemplateDefault, cfg.TimestampFormat)
	plainFormatter := NewFormatter(TemplatePlain, cfg.TimestampFormat)

	p := &Pipeline{
		ring: NewRingBuffer(int(cfg.RingSize)),
	}
	p.currentConfig.Store(cfg.Clone())

	var routes []route

	if cfg.File != "" {
		fs, err := newFileSink(cfg.File)
		if err != nil {
			return nil, err
		}
		p.file = fs
		routes = append(routes, route{
			sink:      fs,
			formatter: defaultFormatter,
			except:    StatsLoggerName,
		})
	} else {
		routes = append(routes, route{
			sink:      newConsoleSink("console", cfg.ConsoleTarget),
			formatter: defaultFormatter,
			except:    StatsLoggerName,
		})
	}

	routes = append(routes,
		route{
			sink:      newConsoleSink("console_plain", cfg.ConsoleTarget),
			formatter: plainFormatter,
			only:      StatsLoggerName,
		},
		route{
			sink:      &ringSink{ring: p.ring},
			formatter: defaultFormatter,
		},
	)

	flushInterval := time.Duration(cfg.FlushIntervalMs) * time.Millisecond
	p.relay = NewRelay(cfg.QueueSize, 0, flushInterval, cfg.InternalErrorsToStderr, routes)

	return p, nil
}

// GetConfig returns a copy of the pipeline configuration
func (p *Pipeline) GetConfig() *Config {
	return p.getConfig().Clone()
}

func (p *Pipeline) getConfig() *Config {
	return p.currentConfig.Load().(*Config)
}

// Start launches the dispatcher. Safe to call multiple times.
func (p *Pipeline) Start() {
	p.relay.Start()
}

// Stop drains the queued records and halts the dispatcher. Idempotent.
func (p *Pipeline) Stop(timeout ...time.Duration) error {
	return p.relay.Stop(timeout...)
}

// Flush syncs buffered sinks and waits for confirmation or timeout.
func (p *Pipeline) Flush(timeout time.Duration) error {
	return p.relay.Flush(timeout)
}

// Shutdown stops the pipeline, letting queued records drain, then
// syncs and closes the file sink. Idempotent.
func (p *Pipeline) Shutdown(timeout ...time.Duration) error {
	if !p.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	finalErr := p.relay.Stop(timeout...)

	if p.file != nil {
		if err := p.file.Sync(); err != nil {
			finalErr = combineErrors(finalErr, fmtErrorf("failed to sync log file during shutdown: %w", err))
		}
		if err := p.file.Close(); err != nil {
			finalErr = combineErrors(finalErr, fmtErrorf("failed to close log file during shutdown: %w", err))
		}
	}

	return finalErr
}

// GetLogs returns a point-in-time copy of the most recent formatted
// log lines, oldest first, capped at the ring buffer capacity.
func (p *Pipeline) GetLogs() []string {
	return p.ring.Snapshot()
}

// Named returns the logger with the given name, creating it on first
// use. All loggers of a pipeline feed the same relay; the statistics
// logger keeps its fixed INFO floor regardless of the configured level.
func (p *Pipeline) Named(name string) *Logger {
	if name == "" {
		name = RootLoggerName
	}

	if cached, ok := p.loggers.Load(name); ok {
		return cached.(*Logger)
	}

	level := p.getConfig().Level
	if name == StatsLoggerName {
		level = LevelInfo
	}

	logger := &Logger{name: name, level: level, pipeline: p}
	actual, _ := p.loggers.LoadOrStore(name, logger)
	return actual.(*Logger)
}

// Root returns the pipeline's primary logger.
func (p *Pipeline) Root() *Logger {
	return p.Named(RootLoggerName)
}

// StatsLogger returns the statistics logger, whose output goes only to
// the plain console sink.
func (p *Pipeline) StatsLogger() *Logger {
	return p.Named(StatsLoggerName)
}
