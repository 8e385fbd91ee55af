// FILE: reporter.go
package locust

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

// uncaughtFault is set permanently the first time a monitored task
// terminates abnormally. The hosting process reads it at shutdown to
// pick the exit status; nothing inside this package consults it.
var uncaughtFault atomic.Bool

// UncaughtFault reports whether any monitored task has terminated
// abnormally since process start.
func UncaughtFault() bool {
	return uncaughtFault.Load()
}

// ExitRequest is a deliberate process-termination request. A task that
// panics with or returns an ExitRequest is logged calmly instead of as
// a crash, but still flips the process-wide fault flag.
type ExitRequest struct {
	Code int
}

func (e ExitRequest) Error() string {
	return fmt.Sprintf("exit(%d)", e.Code)
}

// Fault is the captured context of a task that terminated abnormally:
// the recovered panic payload or returned error, plus the stack at
// capture time.
type Fault struct {
	Task  string
	Value any
	Stack []byte
}

// Detail renders the fault payload and call stack for log output.
func (f *Fault) Detail() string {
	var b strings.Builder
	b.WriteString(renderValue(f.Value))
	if len(f.Stack) > 0 {
		b.WriteByte('\n')
		b.WriteString(strings.TrimRight(string(f.Stack), "\n"))
	}
	return b.String()
}

// exitRequest extracts a deliberate termination request from the fault
// payload, whether it was panicked directly or returned as a (possibly
// wrapped) error.
func (f *Fault) exitRequest() (ExitRequest, bool) {
	switch v := f.Value.(type) {
	case ExitRequest:
		return v, true
	case error:
		var req ExitRequest
		if errors.As(v, &req) {
			return req, true
		}
	}
	return ExitRequest{}, false
}

// FaultHandler consumes the captured fault of a terminated task.
type FaultHandler func(Fault)

// NewFaultHandler returns a handler that logs faults of monitored
// tasks to the given logger. Deliberate exit requests get a short line
// at min(INFO, level) with the full context deferred to DEBUG; real
// faults get the full context at level, which defaults to CRITICAL.
// Either way the process-wide fault flag is set.
func NewFaultHandler(logger *Logger, level ...int64) FaultHandler {
	defaultLevel := LevelCritical
	if len(level) > 0 {
		defaultLevel = level[0]
	}

	return func(fault Fault) {
		if req, ok := fault.exitRequest(); ok {
			// Higher than INFO would sound way too urgent for a
			// requested exit
			logger.log(minLevel(LevelInfo, defaultLevel), nil,
				"exit(%d) called (use log level DEBUG for callstack)", req.Code)
			logger.log(LevelDebug, &fault, "Unhandled exception in task %s", fault.Task)
		} else {
			logger.log(defaultLevel, &fault, "Unhandled exception in task %s", fault.Task)
		}
		uncaughtFault.Store(true)
	}
}

// Go runs fn in a new goroutine and hands any panic or returned error
// to the fault handler, stack included. A nil return ends the task
// silently.
func Go(task string, handler FaultHandler, fn func() error) {
	go func() {
		defer func() {
			if p := recover(); p != nil {
				handler(Fault{Task: task, Value: p, Stack: debug.Stack()})
			}
		}()

		if err := fn(); err != nil {
			handler(Fault{Task: task, Value: err, Stack: debug.Stack()})
		}
	}()
}
