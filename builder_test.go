// FILE: builder_test.go
package locust

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderChain(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "built.log")

	pipeline, err := NewBuilder().
		LevelString("warning").
		File(logPath).
		ConsoleTarget("stdout").
		QueueSize(512).
		RingSize(64).
		TimestampFormat("15:04:05").
		FlushIntervalMs(50).
		InternalErrorsToStderr(true).
		Build()
	require.NoError(t, err)
	defer pipeline.Shutdown(time.Second)

	cfg := pipeline.GetConfig()
	assert.Equal(t, LevelWarning, cfg.Level)
	assert.Equal(t, logPath, cfg.File)
	assert.Equal(t, "stdout", cfg.ConsoleTarget)
	assert.Equal(t, int64(512), cfg.QueueSize)
	assert.Equal(t, int64(64), cfg.RingSize)
	assert.Equal(t, "15:04:05", cfg.TimestampFormat)
	assert.Equal(t, int64(50), cfg.FlushIntervalMs)
	assert.True(t, cfg.InternalErrorsToStderr)
}

func TestBuilderDefaults(t *testing.T) {
	pipeline, err := NewBuilder().Build()
	require.NoError(t, err)
	defer pipeline.Shutdown(time.Second)

	assert.Equal(t, *DefaultConfig(), *pipeline.GetConfig())
}

func TestBuilderInvalidLevel(t *testing.T) {
	_, err := NewBuilder().LevelString("verbose").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}

func TestBuilderInvalidConfig(t *testing.T) {
	_, err := NewBuilder().QueueSize(-1).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "queue_size")
}

// The first error in the chain wins and later setters do not clear it
func TestBuilderErrorSticks(t *testing.T) {
	_, err := NewBuilder().LevelString("nope").LevelString("info").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}
