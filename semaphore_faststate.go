package synx

import "sync/atomic"

// FastStSemaphore has the cheapest single-threaded path of the family
// (three atomic fetch-adds per Acquire, one per Release, no lock) but its
// waiter-arbitration event
// serializes every waiter that's currently blocked, so it degrades under
// heavy contention. Waiters first file in through waitEvent one at a time
// (so only one goroutine is ever mutating its view of semaCount at a
// given moment among the waiters), then contend on semaCount the same way
// UnslowSemaphore does.
type FastStSemaphore struct {
	_         noCopy
	waitEvent Event
	semaEvent Event
	waitCount atomic.Int64
	semaCount atomic.Int64
}

// NewFastStSemaphore returns a semaphore with the given number of initial
// permits.
func NewFastStSemaphore(initialCount int64) *FastStSemaphore {
	s := &FastStSemaphore{
		waitEvent: *NewEvent(false, false),
		semaEvent: *NewEvent(false, false),
	}
	if initialCount > 0 {
		s.Release(initialCount)
	}
	return s
}

// Acquire blocks until one permit is available, then takes it.
func (s *FastStSemaphore) Acquire() {
	waiterID := s.waitCount.Add(1) - 1
	if waiterID > 0 {
		s.waitEvent.Wait()
	}

	if s.semaCount.Add(-1) < 0 {
		s.semaEvent.Wait()
	}

	if s.waitCount.Add(-1) > 0 {
		s.waitEvent.Set()
	}
}

// Release adds delta permits, delta must be > 0.
func (s *FastStSemaphore) Release(delta int64) {
	if delta <= 0 {
		panic("synx: FastStSemaphore.Release requires delta > 0")
	}
	if s.semaCount.Add(delta)-delta < 0 {
		s.semaEvent.Set()
	}
}
