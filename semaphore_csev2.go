package synx

import "sync/atomic"

// Csev2Semaphore is FastStSemaphore's waiter-arbitration event replaced by
// an ExclusiveLock: the lock is held for the entire Acquire call, including
// any time spent parked on semaEvent, which makes every Acquire strictly
// serialized against every other Acquire (but never against Release, which
// never takes the lock).
type Csev2Semaphore struct {
	_         noCopy
	mu        ExclusiveLock
	semaEvent Event
	semaCount atomic.Int64
}

// NewCsev2Semaphore returns a semaphore with the given number of initial
// permits.
func NewCsev2Semaphore(initialCount int64) *Csev2Semaphore {
	s := &Csev2Semaphore{semaEvent: *NewEvent(false, false)}
	if initialCount > 0 {
		s.Release(initialCount)
	}
	return s
}

// Acquire blocks until one permit is available, then takes it. The
// internal lock is held for the whole call, serializing Acquire against
// other Acquire calls (not against Release).
func (s *Csev2Semaphore) Acquire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.semaCount.Add(-1) < 0 {
		s.semaEvent.Wait()
	}
}

// Release adds delta permits, delta must be > 0.
func (s *Csev2Semaphore) Release(delta int64) {
	if delta <= 0 {
		panic("synx: Csev2Semaphore.Release requires delta > 0")
	}
	if s.semaCount.Add(delta)-delta < 0 {
		s.semaEvent.Set()
	}
}
