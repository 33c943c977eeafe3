// Package limiter bounds concurrent outbound translation calls.
package limiter

import (
	"context"
	"errors"
	"time"
)

// ErrBusy is returned when no slot frees up within the wait window.
var ErrBusy = errors.New("limiter: all slots busy")

// Slots is a counting semaphore over a buffered channel.
type Slots struct {
	ch chan struct{}
}

// New creates a limiter with n slots (minimum 1).
func New(n int) *Slots {
	if n <= 0 {
		n = 1
	}
	return &Slots{ch: make(chan struct{}, n)}
}

// Acquire takes a slot, waiting at most wait. It returns ctx.Err() if ctx
// ends first and ErrBusy on timeout. Every nil return must be paired with
// Release (use defer).
func (s *Slots) Acquire(ctx context.Context, wait time.Duration) error {
	select {
	case s.ch <- struct{}{}:
		return nil
	default:
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case s.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrBusy
	}
}

// Release frees a slot taken by Acquire.
func (s *Slots) Release() {
	<-s.ch
}

// InUse returns the number of held slots.
func (s *Slots) InUse() int {
	return len(s.ch)
}

// Cap returns the number of slots.
func (s *Slots) Cap() int {
	return cap(s.ch)
}
