package synx

import (
	"sync/atomic"

	"github.com/synctbench/urwmutex/internal/opt"
)

// ExclusiveLock is a single-holder blocking mutual-exclusion primitive with
// no reader/writer distinction and no fairness promise beyond whatever the
// runtime semaphore underneath already gives waiters (roughly FIFO, not
// guaranteed). It is the writer-exclusion lock every RWMutex variant in this
// package serializes writers through.
//
// Size: 8 bytes (a single locked-state word plus the semaphore word), so it
// is cheap to embed. The zero value is an unlocked ExclusiveLock.
type ExclusiveLock struct {
	_ noCopy
	// locked: 0 = unlocked, 1 = locked/no waiters, 2 = locked/waiters
	// present. The 3-state encoding (rather than a plain bool) lets
	// Unlock skip the semaphore release entirely in the uncontended case.
	locked atomic.Uint32
	sema   opt.Sema
}

// Lock blocks until the lock is available.
func (l *ExclusiveLock) Lock() {
	if l.locked.CompareAndSwap(0, 1) {
		return
	}
	l.slowLock()
}

func (l *ExclusiveLock) slowLock() {
	for {
		// Announce a waiter is present by going to "locked, waiters" (2);
		// this mirrors the classic futex-mutex state machine so a
		// releasing holder knows whether it needs to wake anyone.
		old := l.locked.Swap(2)
		if old == 0 {
			return
		}
		l.sema.Acquire()
		if l.locked.CompareAndSwap(0, 2) {
			return
		}
	}
}

// Unlock releases the lock. Unlocking an already-unlocked ExclusiveLock is
// undefined behavior, per this package's error-handling policy.
func (l *ExclusiveLock) Unlock() {
	if l.locked.Swap(0) == 2 {
		l.sema.Release()
	}
}

// TryLock attempts to acquire the lock without blocking.
func (l *ExclusiveLock) TryLock() bool {
	return l.locked.CompareAndSwap(0, 1)
}
