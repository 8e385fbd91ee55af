// FILE: utility.go
package locust

import (
	"fmt"
	"strings"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "locust: ") {
		format = "locust: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// ParseLevel converts a level name to its numeric constant. Matching
// is case-insensitive.
func ParseLevel(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use debug, info, warning, error, critical)", levelStr)
	}
}

// minLevel returns the lower of two severities.
func minLevel(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
