package editor

import (
	"sync"
	"time"
)

// stopper is the part of *time.Timer the debouncer needs.
type stopper interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) stopper

func realAfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// Debouncer coalesces bursts of triggers into a single delayed call. Each
// Trigger cancels the pending call and restarts the delay, so only the last
// function of a burst runs, once, after a quiet period.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	after   afterFunc
	pending stopper
	fn      func()
	gen     uint64
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay: delay,
		after: realAfterFunc,
	}
}

// Trigger schedules fn after the quiet period, replacing any pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
	}
	d.gen++
	gen := d.gen
	d.fn = fn
	d.pending = d.after(d.delay, func() { d.fire(gen) })
}

// fire runs the pending call if no later Trigger, Flush or Stop superseded it.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.fn == nil {
		d.mu.Unlock()
		return
	}
	fn := d.take()
	d.mu.Unlock()

	fn()
}

// Flush runs the pending call immediately. It reports whether a call ran.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.fn == nil {
		d.mu.Unlock()
		return false
	}
	fn := d.take()
	d.mu.Unlock()

	fn()
	return true
}

// Stop drops the pending call without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.take()
}

// Pending reports whether a call is waiting for its quiet period to end.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fn != nil
}

// take clears the pending call and returns it. d.mu must be held.
func (d *Debouncer) take() func() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.gen++
	fn := d.fn
	d.fn = nil
	return fn
}
