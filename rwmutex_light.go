package synx

import (
	"sync/atomic"

	"github.com/synctbench/urwmutex/internal/opt"
)

// LightRWMutex is the reader-biased variant with no separate writer-done
// event: a retracted reader simply acquires, then immediately releases,
// the writer-exclusion lock itself. Since the writer already holds that
// lock for its entire critical section, this blocks the reader until the
// writer is done without needing a second signal, at the cost of funneling
// every retracted reader through the same lock a writer also contends on.
type LightRWMutex struct {
	_              noCopy
	writeRequested atomic.Bool
	_              opt.Pad
	x              ExclusiveLock
	registry       ThreadLocalRegistry
}

func (m *LightRWMutex) RLock() {
	st := m.registry.Get(&m.x)
	for {
		if readerFastPathEnter(st, &m.writeRequested) {
			return
		}
		readerRetract(st)
		m.x.Lock()
		m.x.Unlock()
	}
}

func (m *LightRWMutex) RUnlock() {
	st := m.registry.Get(&m.x)
	readerRelease(st, &m.writeRequested)
}

func (m *LightRWMutex) Lock() {
	writerAcquireCommon(&m.x, &m.writeRequested, &m.registry, nil)
}

func (m *LightRWMutex) Unlock() {
	writerReleaseCommon(&m.x, &m.writeRequested, nil)
}
