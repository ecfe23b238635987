package synx

import (
	"sync/atomic"
	"time"

	"github.com/synctbench/urwmutex/internal/opt"
)

// SpinRWMutex is the demonstrative reader-biased variant: both the reader's
// retry loop and the writer's wait-for-readers loop are plain busy-sleep
// polling rather than an event handshake. It exists as the simplest
// possible baseline to compare the other five variants against, not as a
// recommended production choice — sleeping 1ms between polls bounds CPU
// waste at the cost of up to 1ms of extra latency on both sides.
type SpinRWMutex struct {
	_              noCopy
	writeRequested atomic.Bool
	_              opt.Pad
	x              ExclusiveLock
	registry       ThreadLocalRegistry
}

func (m *SpinRWMutex) RLock() {
	st := m.registry.Get(&m.x)
	for {
		if readerFastPathEnter(st, &m.writeRequested) {
			return
		}
		st.isReading.Store(false)
		for m.writeRequested.Load() {
			time.Sleep(time.Millisecond)
		}
	}
}

func (m *SpinRWMutex) RUnlock() {
	st := m.registry.Get(&m.x)
	st.isReading.Store(false)
}

func (m *SpinRWMutex) Lock() {
	m.x.Lock()
	m.writeRequested.Store(true)
	m.registry.Enumerate(func(st *PerReaderState) {
		for st.isReading.Load() {
			time.Sleep(time.Millisecond)
		}
	})
}

func (m *SpinRWMutex) Unlock() {
	m.writeRequested.Store(false)
	m.x.Unlock()
}
