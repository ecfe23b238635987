package synx

// CsevSemaphore is built from an ExclusiveLock guarding a plain counter
// plus one auto-reset Event for parking. Acquire loops: take the lock,
// take a permit if one is available, otherwise release the lock and wait
// on the event, then retry. A successful acquire that leaves more permits
// behind re-signals the event so the next waiter doesn't block forever on
// a signal that already happened.
type CsevSemaphore struct {
	_     noCopy
	mu    ExclusiveLock
	event Event
	count int64
}

// NewCsevSemaphore returns a semaphore with the given number of initial
// permits.
func NewCsevSemaphore(initialCount int64) *CsevSemaphore {
	s := &CsevSemaphore{event: *NewEvent(false, false)}
	if initialCount > 0 {
		s.Release(initialCount)
	}
	return s
}

// Acquire blocks until one permit is available, then takes it.
func (s *CsevSemaphore) Acquire() {
	for {
		var took bool
		var remaining int64
		s.mu.Lock()
		if s.count > 0 {
			s.count--
			remaining = s.count
			took = true
		}
		s.mu.Unlock()
		if took {
			if remaining > 0 {
				s.event.Set()
			}
			return
		}
		s.event.Wait()
	}
}

// Release adds delta permits, delta must be > 0.
func (s *CsevSemaphore) Release(delta int64) {
	if delta <= 0 {
		panic("synx: CsevSemaphore.Release requires delta > 0")
	}
	s.mu.Lock()
	old := s.count
	s.count += delta
	s.mu.Unlock()
	if old <= 0 {
		s.event.Set()
	}
}
