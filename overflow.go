// FILE: overflow.go
package locust

import (
	"sync"
	"time"
)

// overflowTracker aggregates dropped records into episodes so that
// saturation produces one deferred diagnostic instead of a diagnostic
// per drop. An episode opens on the first drop after a successful
// enqueue and closes on the next successful enqueue.
type overflowTracker struct {
	mu      sync.Mutex
	started time.Time // zero while flowing
	dropped uint64    // drops in the open episode
}

// noteDrop records one dropped record, opening an episode if none is open.
func (t *overflowTracker) noteDrop(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started.IsZero() {
		t.started = now
	}
	t.dropped++
}

// noteEnqueue closes any open episode. It returns the episode's drop
// count and wall-clock duration, and whether a summary should be
// emitted. Called on every successful enqueue; the fast path is a
// single zero check under the mutex.
func (t *overflowTracker) noteEnqueue(now time.Time) (uint64, time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started.IsZero() {
		return 0, 0, false
	}
	count := t.dropped
	elapsed := now.Sub(t.started)
	t.started = time.Time{}
	t.dropped = 0
	return count, elapsed, true
}
