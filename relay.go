// FILE: relay.go
package locust

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// relayState encapsulates the runtime state of the relay
type relayState struct {
	Started         atomic.Bool
	ProcessorExited atomic.Bool // tracks if the dispatcher goroutine has exited
	ActiveQueue     atomic.Value // stores chan Record

	flushRequestChan chan chan struct{} // channel to request a sink sync
	flushMutex       sync.Mutex         // protect concurrent Flush calls
}

// Relay is the bounded queue between record producers and the single
// dispatcher goroutine that fans each record out to the configured
// sink routes. Submit never blocks the caller: when the queue is full
// the record is dropped and the drop is folded into the current
// overflow episode.
type Relay struct {
	capacity      int64
	floor         int64 // minimum level accepted into the queue, 0 = none
	flushInterval time.Duration
	routes        []route
	state         relayState
	overflow      overflowTracker
	stderrErrors  bool // report sink failures on stderr
}

// NewRelay creates a relay over the given routes. The relay does not
// process records until Start is called.
func NewRelay(capacity, floor int64, flushInterval time.Duration, stderrErrors bool, routes []route) *Relay {
	if capacity < 1 {
		capacity = DefaultQueueSize
	}
	if flushInterval <= 0 {
		flushInterval = 100 * time.Millisecond
	}

	r := &Relay{
		capacity:      capacity,
		floor:         floor,
		flushInterval: flushInterval,
		routes:        routes,
		stderrErrors:  stderrErrors,
	}

	// A closed channel up-front prevents nil assertions before Start
	initialQueue := make(chan Record)
	close(initialQueue)
	r.state.ActiveQueue.Store(initialQueue)
	r.state.ProcessorExited.Store(true)
	r.state.flushRequestChan = make(chan chan struct{}, 1)

	return r
}

// getQueue safely retrieves the current queue channel
func (r *Relay) getQueue() chan Record {
	return r.state.ActiveQueue.Load().(chan Record)
}

// Submit attempts to enqueue the record without blocking. It returns
// true when the record was queued and false when it was dropped
// (queue full or relay stopped). Records below the relay's severity
// floor are discarded without counting as drops.
func (r *Relay) Submit(rec Record) bool {
	if rec.Level < r.floor {
		return true
	}
	return r.send(rec)
}

// send performs the non-blocking enqueue and overflow accounting.
func (r *Relay) send(rec Record) (queued bool) {
	defer func() {
		if p := recover(); p != nil { // send on closed channel during Stop
			r.overflow.noteDrop(time.Now())
			queued = false
		}
	}()

	ch := r.getQueue()

	select {
	case ch <- rec:
	default:
		r.overflow.noteDrop(time.Now())
		return false
	}

	// Success closes any open drop episode; emit its one summary
	if count, elapsed, open := r.overflow.noteEnqueue(time.Now()); open {
		summary := Record{
			TimeStamp: time.Now(),
			Level:     LevelWarning,
			Name:      pipelineLoggerName,
			Message:   "Discarded %d log messages during %.2f seconds due to excessive logging resulting in log queue being full",
			Args:      []any{count, elapsed.Seconds()},
		}
		// Best effort: a full queue counts the summary itself as the
		// first drop of the next episode
		select {
		case ch <- summary:
		default:
			r.overflow.noteDrop(time.Now())
		}
	}
	return true
}

// Start launches the dispatcher goroutine. Safe to call multiple times.
func (r *Relay) Start() {
	if r.state.Started.CompareAndSwap(false, true) {
		queue := make(chan Record, r.capacity)
		r.state.ActiveQueue.Store(queue)
		r.state.ProcessorExited.Store(false)
		go r.dispatch(queue)
	}
}

// Stop signals the dispatcher to drain whatever is already queued and
// exit, then waits for it up to the timeout (default 1s). Idempotent;
// returns nil when already stopped.
func (r *Relay) Stop(timeout ...time.Duration) error {
	if !r.state.Started.CompareAndSwap(true, false) {
		return nil
	}

	effectiveTimeout := time.Second
	if len(timeout) > 0 {
		effectiveTimeout = timeout[0]
	}

	// Swap in a pre-closed channel so late Submit calls fail fast,
	// then close the live queue to let the dispatcher drain it
	ch := r.getQueue()
	closedQueue := make(chan Record)
	close(closedQueue)
	r.state.ActiveQueue.Store(closedQueue)
	close(ch)

	deadline := time.Now().Add(effectiveTimeout)
	for time.Now().Before(deadline) {
		if r.state.ProcessorExited.Load() {
			return nil
		}
		time.Sleep(minWaitTime)
	}

	if !r.state.ProcessorExited.Load() {
		return fmtErrorf("dispatcher did not exit within timeout (%v)", effectiveTimeout)
	}
	return nil
}

// Flush asks the dispatcher to sync buffered sinks and waits for
// confirmation or timeout.
func (r *Relay) Flush(timeout time.Duration) error {
	r.state.flushMutex.Lock()
	defer r.state.flushMutex.Unlock()

	if !r.state.Started.Load() {
		return fmtErrorf("relay not started")
	}

	confirmChan := make(chan struct{})

	select {
	case r.state.flushRequestChan <- confirmChan:
	case <-time.After(minWaitTime): // dispatcher stuck or overloaded
		return fmtErrorf("failed to send flush request to dispatcher")
	}

	select {
	case <-confirmChan:
		return nil
	case <-time.After(timeout):
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}
}

// dispatch is the single consumer loop. It takes records in arrival
// order and pushes each one to every accepting route before touching
// the next. Closing the queue channel drains the backlog and exits.
func (r *Relay) dispatch(queue <-chan Record) {
	defer r.state.ProcessorExited.Store(true)

	flushTicker := time.NewTicker(r.flushInterval)
	defer flushTicker.Stop()

	for {
		select {
		case rec, ok := <-queue:
			if !ok {
				r.syncSinks()
				return
			}
			r.deliver(rec)

		case <-flushTicker.C:
			r.syncSinks()

		case confirmChan := <-r.state.flushRequestChan:
			r.syncSinks()
			close(confirmChan)
		}
	}
}

// deliver fans one record out to every accepting route, in route order.
func (r *Relay) deliver(rec Record) {
	for i := range r.routes {
		rt := &r.routes[i]
		if !rt.accepts(rec) {
			continue
		}
		r.emit(rt, rt.formatter.Format(rec))
	}
}

// emit pushes one line to one sink. Failures and panics are contained
// here: one bad sink must not stop delivery to the others or kill the
// dispatcher.
func (r *Relay) emit(rt *route, line string) {
	defer func() {
		if p := recover(); p != nil {
			r.internalLog("sink '%s' panicked: %v\n", rt.sink.Name(), p)
		}
	}()

	if err := rt.sink.Emit(line); err != nil {
		r.internalLog("sink '%s' delivery failed: %v\n", rt.sink.Name(), err)
	}
}

// syncSinks flushes buffered sinks (the file sink) to storage.
func (r *Relay) syncSinks() {
	for i := range r.routes {
		if s, ok := r.routes[i].sink.(syncer); ok {
			if err := s.Sync(); err != nil {
				r.internalLog("sink '%s' sync failed: %v\n", r.routes[i].sink.Name(), err)
			}
		}
	}
}

// internalLog writes relay diagnostics to stderr, if enabled
func (r *Relay) internalLog(format string, args ...any) {
	if !r.stderrErrors {
		return
	}
	fmt.Fprintf(os.Stderr, "locust: "+format, args...)
}
