package synx

import "sync/atomic"

// RecursiveExclusiveLock is a lazily-initialized exclusive lock that the
// same goroutine may re-acquire without deadlocking itself. It has no
// reader/writer distinction — RLock and RUnlock are aliases for Lock and
// Unlock — because the source this is modeled on only ever used the
// recursive variant as a plain recursive mutex dressed up in the RWLock
// shape for benchmark-harness uniformity.
//
// The zero value is ready to use: the wake-up event is created lazily, on
// first contention, via a CAS on an atomic pointer rather than a
// three-state (uninit/initializing/ready) flag, since a pointer CAS
// already gives exactly one winner and a result every later caller can
// read back.
type RecursiveExclusiveLock struct {
	_ noCopy

	// holderCount counts goroutines that have taken (or are waiting to
	// take) this lock; holderGoroutine identifies the current holder.
	// holderCount must be read with at least acquire ordering before
	// holderGoroutine is compared against the caller's own id: the
	// guarantee "holderGoroutine == self implies I hold the lock" only
	// holds if that load cannot be reordered ahead of the holderCount
	// check that gates it. See the design notes on this variant's
	// recursion-check race.
	holderCount     atomic.Int64
	holderGoroutine atomic.Int64
	recursionCount  int64 // touched only by the current holder

	event atomic.Pointer[Event]
}

func (l *RecursiveExclusiveLock) lazyEvent() *Event {
	if ev := l.event.Load(); ev != nil {
		return ev
	}
	ev := NewEvent(false, false)
	if !l.event.CompareAndSwap(nil, ev) {
		return l.event.Load()
	}
	return ev
}

// Lock acquires the lock. A goroutine that already holds it may call Lock
// again without blocking; each such call must be matched by one Unlock.
func (l *RecursiveExclusiveLock) Lock() {
	self := goroutineID()

	if l.holderCount.Load() != 0 && l.holderGoroutine.Load() == self {
		l.recursionCount++
		return
	}

	if l.holderCount.Add(1)-1 == 0 {
		l.recursionCount = 1
		l.holderGoroutine.Store(self)
		return
	}

	l.lazyEvent().Wait()
	l.recursionCount = 1
	l.holderGoroutine.Store(self)
}

// Unlock releases one level of recursion. If this was the outermost Lock
// call for the current holder, the lock passes to the next waiter, if any.
func (l *RecursiveExclusiveLock) Unlock() {
	l.recursionCount--
	if l.recursionCount != 0 {
		return
	}
	l.holderGoroutine.Store(0)
	if l.holderCount.Add(-1)+1 > 1 {
		l.lazyEvent().Set()
	}
}

// RLock is an alias for Lock: this variant makes no reader/writer
// distinction.
func (l *RecursiveExclusiveLock) RLock() { l.Lock() }

// RUnlock is an alias for Unlock.
func (l *RecursiveExclusiveLock) RUnlock() { l.Unlock() }
