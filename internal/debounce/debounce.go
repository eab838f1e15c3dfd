// Package debounce delays values until their producer has been quiet for a
// fixed window. Only the last value pushed within a window is delivered.
package debounce

import (
	"sync"
	"time"
)

// Debouncer owns a single timer. Every Push cancels the pending timer and
// schedules a new one; when a timer fires its value is sent on C.
type Debouncer[T any] struct {
	delay time.Duration
	out   chan T

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64 // bumped on every Push and Stop so a superseded timer can't deliver
	stopped bool
}

// New creates a debouncer with the given quiet window
func New[T any](delay time.Duration) *Debouncer[T] {
	return &Debouncer[T]{
		delay: delay,
		out:   make(chan T, 1),
	}
}

// C returns the channel values are delivered on
func (d *Debouncer[T]) C() <-chan T {
	return d.out
}

// Delay returns the quiet window
func (d *Debouncer[T]) Delay() time.Duration {
	return d.delay
}

// Push records v as the pending value and restarts the window
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen, v) })
}

// Flush delivers v immediately, cancelling anything pending
func (d *Debouncer[T]) Flush(v T) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.deliverLocked(v)
	d.mu.Unlock()
}

// Pending reports whether a value is waiting for its window to elapse
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Cancel drops the pending value and any value not yet taken from C.
// The debouncer stays usable.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	select {
	case <-d.out:
	default:
	}
}

// Stop cancels the pending value and closes C. Later pushes are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	close(d.out)
}

func (d *Debouncer[T]) fire(gen uint64, v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.gen || d.stopped {
		return
	}
	d.timer = nil
	d.deliverLocked(v)
}

// deliverLocked puts v on the single-slot channel, replacing a value the
// reader hasn't taken yet. d.mu must be held so a superseded timer can't
// overwrite it.
func (d *Debouncer[T]) deliverLocked(v T) {
	for {
		select {
		case d.out <- v:
			return
		default:
		}
		select {
		case <-d.out:
		default:
		}
	}
}
