// FILE: ring.go
package locust

import (
	"sync"
)

// RingBuffer is a fixed-capacity, insertion-ordered store of formatted
// log lines. When full, the oldest line is evicted before the new one
// is appended. Eviction, not rejection, is the overflow policy: Append
// never blocks and never fails.
//
// The dispatcher is the only writer. Snapshot may be called from any
// goroutine at any time and returns a point-in-time copy.
type RingBuffer struct {
	mu    sync.RWMutex
	lines []string
	head  int // index of the oldest line
	count int
}

// NewRingBuffer creates a ring buffer holding at most capacity lines.
// Capacities below 1 fall back to DefaultRingSize.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 1 {
		capacity = int(DefaultRingSize)
	}
	return &RingBuffer{
		lines: make([]string, capacity),
	}
}

// Append adds one line, evicting the oldest if the buffer is full.
func (r *RingBuffer) Append(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count < len(r.lines) {
		r.lines[(r.head+r.count)%len(r.lines)] = line
		r.count++
		return
	}
	// Full: overwrite the oldest slot and advance the head
	r.lines[r.head] = line
	r.head = (r.head + 1) % len(r.lines)
}

// Snapshot returns the current contents, oldest first.
func (r *RingBuffer) Snapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.lines[(r.head+i)%len(r.lines)]
	}
	return out
}

// Len returns the number of stored lines.
func (r *RingBuffer) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Cap returns the fixed capacity.
func (r *RingBuffer) Cap() int {
	return len(r.lines)
}
