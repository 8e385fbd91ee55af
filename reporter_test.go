// FILE: reporter_test.go
package locust

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ringContains reports whether any retained line contains all fragments
func ringContains(pipeline *Pipeline, fragments ...string) bool {
	for _, line := range pipeline.GetLogs() {
		matched := true
		for _, fragment := range fragments {
			if !strings.Contains(line, fragment) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// TestFaultHandlerPanic verifies that a panicking task is logged at
// CRITICAL with its payload and call stack, and flips the fault flag
func TestFaultHandlerPanic(t *testing.T) {
	pipeline, _ := createTestPipeline(t)
	handler := NewFaultHandler(pipeline.Named("locust.runner"))

	Go("worker-3", handler, func() error {
		panic("connection pool exhausted")
	})

	assert.Eventually(t, func() bool {
		return ringContains(pipeline, "/CRITICAL/locust.runner: Unhandled exception in task worker-3")
	}, 2*time.Second, 20*time.Millisecond)

	joined := strings.Join(pipeline.GetLogs(), "\n")
	assert.Contains(t, joined, "connection pool exhausted")
	assert.Contains(t, joined, "goroutine")
	assert.True(t, UncaughtFault())
}

// TestFaultHandlerReturnedError verifies a returned error is treated
// the same as a panic
func TestFaultHandlerReturnedError(t *testing.T) {
	pipeline, _ := createTestPipeline(t)
	handler := NewFaultHandler(pipeline.Root())

	Go("spawner", handler, func() error {
		return fmt.Errorf("ramp-up failed: %w", fmt.Errorf("no workers connected"))
	})

	assert.Eventually(t, func() bool {
		return ringContains(pipeline, "/CRITICAL/", "Unhandled exception in task spawner")
	}, 2*time.Second, 20*time.Millisecond)

	assert.Contains(t, strings.Join(pipeline.GetLogs(), "\n"), "no workers connected")
}

// TestFaultHandlerExitRequest verifies deliberate exits log a calm
// short line with the full context deferred to DEBUG
func TestFaultHandlerExitRequest(t *testing.T) {
	t.Run("returned", func(t *testing.T) {
		pipeline, _ := createTestPipeline(t)
		handler := NewFaultHandler(pipeline.Root())

		Go("main-loop", handler, func() error {
			return ExitRequest{Code: 3}
		})

		assert.Eventually(t, func() bool {
			return ringContains(pipeline, "/INFO/", "exit(3) called (use log level DEBUG for callstack)")
		}, 2*time.Second, 20*time.Millisecond)

		// Pipeline runs at DEBUG level, so the deferred detail is visible
		assert.True(t, ringContains(pipeline, "/DEBUG/", "Unhandled exception in task main-loop"))
		assert.True(t, UncaughtFault())
	})

	t.Run("wrapped", func(t *testing.T) {
		pipeline, _ := createTestPipeline(t)
		handler := NewFaultHandler(pipeline.Root())

		Go("main-loop", handler, func() error {
			return fmt.Errorf("shutting down: %w", ExitRequest{Code: 1})
		})

		assert.Eventually(t, func() bool {
			return ringContains(pipeline, "/INFO/", "exit(1) called")
		}, 2*time.Second, 20*time.Millisecond)
	})

	t.Run("panicked", func(t *testing.T) {
		pipeline, _ := createTestPipeline(t)
		handler := NewFaultHandler(pipeline.Root())

		Go("main-loop", handler, func() error {
			panic(ExitRequest{Code: 2})
		})

		assert.Eventually(t, func() bool {
			return ringContains(pipeline, "/INFO/", "exit(2) called")
		}, 2*time.Second, 20*time.Millisecond)
	})
}

// TestFaultHandlerCustomLevel verifies the optional severity override
func TestFaultHandlerCustomLevel(t *testing.T) {
	pipeline, _ := createTestPipeline(t)
	handler := NewFaultHandler(pipeline.Root(), LevelError)

	Go("background", handler, func() error {
		panic("transient wobble")
	})

	assert.Eventually(t, func() bool {
		return ringContains(pipeline, "/ERROR/", "Unhandled exception in task background")
	}, 2*time.Second, 20*time.Millisecond)
}

// TestGoCleanExit verifies a nil return logs nothing and leaves the
// fault flag alone (when it has not been set by another task)
func TestGoCleanExit(t *testing.T) {
	pipeline, _ := createTestPipeline(t)
	handler := NewFaultHandler(pipeline.Root())

	done := make(chan struct{})
	Go("quiet", handler, func() error {
		close(done)
		return nil
	})
	<-done

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, pipeline.Flush(time.Second))
	assert.False(t, ringContains(pipeline, "quiet"))
}

func TestExitRequestError(t *testing.T) {
	assert.EqualError(t, ExitRequest{Code: 5}, "exit(5)")
}

func TestFaultDetail(t *testing.T) {
	fault := Fault{
		Task:  "runner",
		Value: "boom",
		Stack: []byte("goroutine 7 [running]:\nmain.run()\n\n"),
	}
	detail := fault.Detail()
	assert.True(t, strings.HasPrefix(detail, "boom\n"))
	assert.True(t, strings.HasSuffix(detail, "main.run()"))
}
