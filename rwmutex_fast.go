package synx

import (
	"sync/atomic"

	"github.com/synctbench/urwmutex/internal/opt"
)

// FastRWMutex is the reader-biased variant optimized purely for reader
// throughput: a retracted reader waits on a single shared manual-reset
// writer-done event rather than polling or re-acquiring any lock, so every
// retracted reader wakes in one hop as soon as the writer releases. This is
// the fastest variant and the one this package's §9 design notes recommend
// for production reader-biased use. Readers that arrive while a writer's
// request is raised retract and wait, so a writer waits only for readers
// already inside; the starvation risk runs the other way: a woken reader
// retracts again if the next writer has already raised its request, so a
// steady stream of writers can keep readers out indefinitely.
type FastRWMutex struct {
	_              noCopy
	writeRequested atomic.Bool
	_              opt.Pad
	x              ExclusiveLock
	wde            Event
	registry       ThreadLocalRegistry
}

// NewFastRWMutex returns a ready-to-use FastRWMutex. The zero value is not
// usable because wde (a manual-reset Event) must start signaled — with no
// writer ever having held the lock, readers must never block.
func NewFastRWMutex() *FastRWMutex {
	m := &FastRWMutex{}
	m.wde = *NewEvent(true, true)
	return m
}

func (m *FastRWMutex) RLock() {
	st := m.registry.Get(&m.x)
	for {
		if readerFastPathEnter(st, &m.writeRequested) {
			return
		}
		readerRetract(st)
		m.wde.Wait()
		// Loop: re-publish isReading and recheck, per §4.4 step 4.
	}
}

func (m *FastRWMutex) RUnlock() {
	st := m.registry.Get(&m.x)
	readerRelease(st, &m.writeRequested)
}

func (m *FastRWMutex) Lock() {
	writerAcquireCommon(&m.x, &m.writeRequested, &m.registry, &m.wde)
}

func (m *FastRWMutex) Unlock() {
	writerReleaseCommon(&m.x, &m.writeRequested, &m.wde)
}
