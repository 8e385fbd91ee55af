// FILE: record.go
package locust

import (
	"time"
)

// Record is an immutable snapshot of a log event at emission time.
// Message holds the raw format string; Args are its positional
// arguments, interpolated by the formatter at delivery time.
type Record struct {
	TimeStamp time.Time
	Level     int64
	Name      string // logger name
	Message   string
	Args      []any
	Fault     *Fault // optional captured fault context
}

// levelToString converts a numeric level to its canonical name.
func levelToString(level int64) string {
	switch level {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "NOTSET"
	}
}
