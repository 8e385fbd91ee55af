// FILE: builder.go
package locust

// Builder provides a fluent API for building pipeline configurations.
// It wraps a Config instance and provides chainable methods for
// setting values.
type Builder struct {
	cfg *Config
	err error // accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Pipeline with the built configuration.
func (b *Builder) Build() (*Pipeline, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewPipeline(b.cfg)
}

// Level sets the severity floor.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the severity floor from a level name.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// File sets the log file path, replacing console output for the
// primary loggers.
func (b *Builder) File(path string) *Builder {
	b.cfg.File = path
	return b
}

// ConsoleTarget selects "stdout" or "stderr" for console sinks.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// QueueSize sets the relay queue capacity.
func (b *Builder) QueueSize(size int64) *Builder {
	b.cfg.QueueSize = size
	return b
}

// RingSize sets the log reader capacity.
func (b *Builder) RingSize(size int64) *Builder {
	b.cfg.RingSize = size
	return b
}

// TimestampFormat sets the timestamp layout of the default template.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// FlushIntervalMs sets the file sink sync interval.
func (b *Builder) FlushIntervalMs(interval int64) *Builder {
	b.cfg.FlushIntervalMs = interval
	return b
}

// InternalErrorsToStderr enables reporting sink failures on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Example usage:
//
//	pipeline, err := locust.NewBuilder().
//		LevelString("debug").
//		File("/var/log/loadtest.log").
//		QueueSize(4096).
//		Build()
//
//	if err == nil {
//		pipeline.Start()
//		defer pipeline.Shutdown()
//		pipeline.Root().Info("pipeline initialized")
//	}
