// Package debounce delays propagation of a rapidly changing value until it
// has been stable for a fixed window.
package debounce

import (
	"sync"
	"time"
)

// Timer is the part of *time.Timer the debouncer needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it via StdAfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

// StdAfterFunc wraps time.AfterFunc.
func StdAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer emits the latest value once no newer value arrived for Delay.
type Debouncer[T any] struct {
	mu       sync.Mutex
	delay    time.Duration
	after    AfterFunc
	onSettle func(T)
	timer    Timer
	seq      uint64
	stopped  bool
}

// New creates a debouncer calling onSettle with each settled value.
func New[T any](delay time.Duration, onSettle func(T)) *Debouncer[T] {
	return NewWithTimer(delay, StdAfterFunc, onSettle)
}

// NewWithTimer creates a debouncer using a custom timer factory.
func NewWithTimer[T any](delay time.Duration, after AfterFunc, onSettle func(T)) *Debouncer[T] {
	if after == nil {
		after = StdAfterFunc
	}
	return &Debouncer[T]{
		delay:    delay,
		after:    after,
		onSettle: onSettle,
	}
}

// Delay returns the quiescence window.
func (d *Debouncer[T]) Delay() time.Duration {
	return d.delay
}

// Set records a new value and restarts the wait.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = d.after(d.delay, func() {
		d.fire(seq, v)
	})
}

// fire delivers v unless a newer Set or Cancel happened since it was scheduled.
// A timer whose Stop lost the race still lands here and is dropped.
func (d *Debouncer[T]) fire(seq uint64, v T) {
	d.mu.Lock()
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	if d.onSettle != nil {
		d.onSettle(v)
	}
}

// Cancel drops the pending value, if any.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a value is waiting to settle.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels the pending value and ignores all later Sets.
func (d *Debouncer[T]) Stop() {
	d.Cancel()
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
}
