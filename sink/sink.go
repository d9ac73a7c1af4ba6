// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

package sink

import (
	"strings"
	"sync"

	"github.com/dynamoRando/lotwire/internal/metrics"
)

// Item is a single retained log record.
type Item struct {
	Level   string `json:"level"`
	Module  string `json:"module"`
	Message string `json:"message"`
}

// Ring is a fixed-capacity FIFO of log items shared between the writers
// that produce records and the HTTP layer that serves snapshots. All
// buffer access happens under a single mutex; pushes evict the oldest
// item when the buffer is full.
//
// A Ring is safe for concurrent use. Hand the same *Ring to whatever
// registers it as a log destination and to the exposure server; both must
// observe the same buffer.
type Ring struct {
	mu    sync.Mutex
	items []Item
	head  int
	count int

	capacity int
	min      Level
	exclude  []string
}

// Option configures a Ring at construction time.
type Option func(*Ring)

// WithExcludedModules adds module identifiers whose records the ring
// drops. A record is excluded when its module name contains any of the
// given substrings. This is how the exposure server keeps its own request
// handling out of the buffer it serves.
func WithExcludedModules(modules ...string) Option {
	return func(r *Ring) {
		r.exclude = append(r.exclude, modules...)
	}
}

// New creates a ring retaining at most capacity items at or above min
// severity. Capacity must be positive; New panics otherwise since a
// zero-capacity sink can never hold a record.
func New(capacity int, min Level, opts ...Option) *Ring {
	if capacity <= 0 {
		panic("sink: capacity must be positive")
	}
	r := &Ring{
		items:    make([]Item, capacity),
		capacity: capacity,
		min:      min,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Enabled reports whether records at the given level are retained.
func (r *Ring) Enabled(level Level) bool {
	return level >= r.min
}

// Record accepts a log record. Records below the severity threshold and
// records originating from an excluded module are dropped. Acceptance is
// never reported back to the caller; a full buffer evicts its oldest item
// rather than rejecting the push.
func (r *Ring) Record(level Level, module, message string) {
	if !r.Enabled(level) {
		metrics.SinkRecordsFiltered.WithLabelValues("level").Inc()
		return
	}
	for _, ex := range r.exclude {
		if strings.Contains(module, ex) {
			metrics.SinkRecordsFiltered.WithLabelValues("module").Inc()
			return
		}
	}

	item := Item{Level: level.String(), Module: module, Message: message}

	r.mu.Lock()
	if r.count == r.capacity {
		// Overwrite the oldest slot and advance the head.
		r.items[r.head] = item
		r.head = (r.head + 1) % r.capacity
		metrics.SinkRecordsEvicted.Inc()
	} else {
		r.items[(r.head+r.count)%r.capacity] = item
		r.count++
	}
	// Publish the gauge before releasing the lock so concurrent writers
	// cannot set it out of order against the buffer state.
	metrics.SinkBufferItems.Set(float64(r.count))
	r.mu.Unlock()

	metrics.SinkRecordsAccepted.WithLabelValues(item.Level).Inc()
}

// Snapshot copies the current buffer contents, oldest first. The copy is
// taken under the lock; serialization happens on the caller's side with
// the lock released. An empty buffer yields an empty, non-nil slice.
func (r *Ring) Snapshot() []Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Item, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.items[(r.head+i)%r.capacity]
	}
	return out
}

// Len returns the number of items currently buffered.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Flush implements the sink contract. The ring holds everything in
// memory, so there is nothing to flush.
func (r *Ring) Flush() {}
