// Package debounce coalesces bursts of events into the last one.
package debounce

import (
	"time"
)

// Debouncer keeps a single pending token. Scheduling a new value cancels and
// replaces the previous one; the token becomes due once the quiet period has
// passed since the last Schedule. It is polled from the frame loop, so it has
// no goroutines and needs no locking.
type Debouncer[T any] struct {
	quiet time.Duration

	pending  bool
	value    T
	deadline time.Time
	seq      uint64
}

func New[T any](quiet time.Duration) *Debouncer[T] {
	return &Debouncer[T]{quiet: quiet}
}

// Schedule replaces any pending token and returns its sequence number.
func (d *Debouncer[T]) Schedule(now time.Time, v T) uint64 {
	d.seq++
	d.pending = true
	d.value = v
	d.deadline = now.Add(d.quiet)
	return d.seq
}

// Cancel drops the pending token, if any.
func (d *Debouncer[T]) Cancel() {
	d.pending = false
	var zero T
	d.value = zero
}

// Pending reports whether a token is waiting.
func (d *Debouncer[T]) Pending() bool {
	return d.pending
}

// Due returns the pending value once its quiet period has elapsed and clears
// the token. It returns false while nothing is due.
func (d *Debouncer[T]) Due(now time.Time) (T, bool) {
	var zero T
	if !d.pending || now.Before(d.deadline) {
		return zero, false
	}
	v := d.value
	d.pending = false
	d.value = zero
	return v, true
}
