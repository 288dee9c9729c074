// Package watcher recompiles stylesheets when they change on disk.
package watcher

import (
	"slices"
	"sync"
	"time"
	"unique"
)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 100 * time.Millisecond

// Debouncer coalesces rapid file system events into batches.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)
	inflight sync.WaitGroup
}

// NewDebouncer creates a new debouncer with the given time window and callback.
// The callback receives the batched paths sorted.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add adds a file path to the pending set and restarts the window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = struct{}{}

	d.stop()
	d.inflight.Add(1)
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire runs on the timer goroutine when the debounce window expires.
func (d *Debouncer) fire() {
	defer d.inflight.Done()

	d.mu.Lock()
	paths := d.drain()
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// Flush runs the callback with all pending paths and blocks until it and any
// batch already fired have returned.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	d.stop()
	d.timer = nil
	paths := d.drain()
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
	d.inflight.Wait()
}

// stop cancels the armed timer. A timer that already fired releases its own
// inflight count. The caller holds mu.
func (d *Debouncer) stop() {
	if d.timer != nil && d.timer.Stop() {
		d.inflight.Done()
	}
}

// drain empties the pending set. The caller holds mu.
func (d *Debouncer) drain() []string {
	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	clear(d.pending)
	slices.Sort(paths)
	return paths
}
