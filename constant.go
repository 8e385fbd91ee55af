// FILE: constant.go
package locust

import (
	"time"
)

// Log level constants, ordered
const (
	LevelDebug    int64 = 10
	LevelInfo     int64 = 20
	LevelWarning  int64 = 30
	LevelError    int64 = 40
	LevelCritical int64 = 50
)

// Queue and buffer defaults
const (
	// DefaultQueueSize is the relay queue capacity in records
	DefaultQueueSize int64 = 10000
	// DefaultRingSize is the in-memory log reader capacity in lines
	DefaultRingSize int64 = 500
)

// Logger names with fixed routing
const (
	// RootLoggerName is the logger used by the package-level log functions
	RootLoggerName = "locust"
	// StatsLoggerName is the statistics logger, routed only through the
	// plain console sink
	StatsLoggerName = "locust.stats_logger"
	// pipelineLoggerName attributes the pipeline's own diagnostics,
	// such as overflow summaries
	pipelineLoggerName = "locust.log"
)

// Timers
const (
	// Minimum wait time used throughout the package
	minWaitTime = 10 * time.Millisecond
)
