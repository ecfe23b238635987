package synx

import (
	"sync/atomic"

	"github.com/synctbench/urwmutex/internal/opt"
)

// Event is a wait/signal primitive, modeled after a Win32 event object:
// manual-reset stays signaled until an explicit Reset and wakes every
// current and future waiter; auto-reset releases exactly one Wait per Set.
// Unlike a Win32 auto-reset event, an auto-reset Event counts: each Set
// made while nobody waits stays pending on its own, so two such Sets let
// two later Waits through rather than one.
//
// It is the rendezvous primitive every reader-biased RWMutex variant builds
// on: a writer-done event tells retracted readers a writer has finished, and
// a per-reader done-event tells a waiting writer that one more reader has
// retracted.
type Event struct {
	_      noCopy
	manual bool

	// Auto-reset path: a direct wrapper around the runtime's own
	// semaphore, so a Set with no waiter yet leaves exactly one pending
	// wakeup instead of being lost.
	sema opt.Sema

	// Manual-reset path: broadcasting "signaled" to an open-ended and
	// possibly-already-waiting set of goroutines is exactly what closing
	// a channel does, so Set swaps in a closed channel and Reset swaps in
	// a fresh open one. mu only guards that swap, never the wait itself.
	mu int32 // 0 = unlocked, 1 = locked; see lock()/unlock() below
	ch atomic.Pointer[chan struct{}]
}

// NewEvent creates an Event in reset mode, initially signaled iff initial
// is true.
func NewEvent(manual, initial bool) *Event {
	e := &Event{manual: manual}
	if manual {
		ch := make(chan struct{})
		if initial {
			close(ch)
		}
		e.ch.Store(&ch)
	} else if initial {
		e.sema.Release()
	}
	return e
}

// Wait blocks until the event is signaled. For an auto-reset event, exactly
// one waiter is released per Set and the event reverts to unsignaled as
// part of that release.
func (e *Event) Wait() {
	if e.manual {
		<-*e.ch.Load()
		return
	}
	e.sema.Acquire()
}

// Set signals the event. A manual-reset event stays signaled until Reset
// and wakes every waiter, current or future; an auto-reset event wakes
// exactly one waiter, or, if nobody is waiting yet, adds one pending wakeup
// that a later Wait consumes (pending wakeups from repeated Sets add up).
func (e *Event) Set() {
	if e.manual {
		e.lock()
		ch := e.ch.Load()
		select {
		case <-*ch:
			// already signaled
		default:
			close(*ch)
		}
		e.unlock()
		return
	}
	e.sema.Release()
}

// Reset clears a manual-reset event so that subsequent Waits block again.
// It is a no-op on an auto-reset event, which never stays signaled.
func (e *Event) Reset() {
	if !e.manual {
		return
	}
	e.lock()
	ch := make(chan struct{})
	e.ch.Store(&ch)
	e.unlock()
}

// IsSet reports whether a manual-reset event is currently signaled. Calling
// it on an auto-reset event is meaningless (the signal is consumed by the
// first waiter) and always reports false.
func (e *Event) IsSet() bool {
	if !e.manual {
		return false
	}
	select {
	case <-*e.ch.Load():
		return true
	default:
		return false
	}
}

func (e *Event) lock() {
	var spins int
	for !atomic.CompareAndSwapInt32(&e.mu, 0, 1) {
		delay(&spins)
	}
}

func (e *Event) unlock() {
	atomic.StoreInt32(&e.mu, 0)
}
