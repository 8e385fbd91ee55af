// FILE: config.go
package locust

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all pipeline configuration values
type Config struct {
	// Routing
	Level         int64  `toml:"level"`          // severity floor for the relay
	File          string `toml:"file"`           // optional log file path; replaces console for primary loggers
	ConsoleTarget string `toml:"console_target"` // "stderr" or "stdout"

	// Capacities
	QueueSize int64 `toml:"queue_size"` // relay queue capacity in records
	RingSize  int64 `toml:"ring_size"`  // log reader capacity in lines

	// Formatting
	TimestampFormat string `toml:"timestamp_format"`

	// Timers
	FlushIntervalMs int64 `toml:"flush_interval_ms"` // interval for syncing the file sink

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level:         LevelInfo,
	File:          "",
	ConsoleTarget: "stderr",

	QueueSize: DefaultQueueSize,
	RingSize:  DefaultRingSize,

	TimestampFormat: "2006-01-02 15:04:05,000",

	FlushIntervalMs: 100,

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a
// validated Config. A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	if err := loader.RegisterStruct("log.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "log.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	if c.QueueSize <= 0 {
		return fmtErrorf("queue_size must be positive: %d", c.QueueSize)
	}

	if c.RingSize <= 0 {
		return fmtErrorf("ring_size must be positive: %d", c.RingSize)
	}

	if c.FlushIntervalMs <= 0 {
		return fmtErrorf("flush_interval_ms must be positive: %d", c.FlushIntervalMs)
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
