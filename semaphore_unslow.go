package synx

import "sync/atomic"

// UnslowSemaphore trades a little wakeup latency for avoiding the kernel
// semaphore's thundering-herd behavior: all waiters park on one auto-reset
// Event, and each waiter that wakes but finds permits still left behind it
// re-signals the event itself (relaying the wakeup) instead of every
// waiter being released at once by V.
type UnslowSemaphore struct {
	_           noCopy
	event       Event
	signalCount atomic.Int64
}

// NewUnslowSemaphore returns a semaphore with the given number of initial
// permits.
func NewUnslowSemaphore(initialCount int64) *UnslowSemaphore {
	s := &UnslowSemaphore{event: *NewEvent(false, false)}
	if initialCount > 0 {
		s.Release(initialCount)
	}
	return s
}

// Acquire blocks until one permit is available, then takes it.
func (s *UnslowSemaphore) Acquire() {
	s.event.Wait()
	if s.signalCount.Add(-1) > 0 {
		// There was at least one more permit behind this one; relay the
		// wakeup to the next waiter instead of requiring a fresh Release.
		s.event.Set()
	}
}

// Release adds delta permits, delta must be > 0.
func (s *UnslowSemaphore) Release(delta int64) {
	if delta <= 0 {
		panic("synx: UnslowSemaphore.Release requires delta > 0")
	}
	if s.signalCount.Add(delta)-delta == 0 {
		s.event.Set()
	}
}
