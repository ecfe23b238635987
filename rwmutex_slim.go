package synx

import "sync"

// SlimRWMutex is the reader-biased family's "just delegate" baseline: it
// forwards directly to sync.RWMutex, which is itself a reasonably
// reader-friendly slim reader/writer lock on every platform Go runs on.
// It exists so the benchmark harness has a control to compare the
// hand-rolled variants against, and so a caller who just wants "the
// standard one" can pick a name from this package's variant set instead of
// reaching past it.
type SlimRWMutex struct {
	_  noCopy
	mu sync.RWMutex
}

func (m *SlimRWMutex) Lock()    { m.mu.Lock() }
func (m *SlimRWMutex) Unlock()  { m.mu.Unlock() }
func (m *SlimRWMutex) RLock()   { m.mu.RLock() }
func (m *SlimRWMutex) RUnlock() { m.mu.RUnlock() }
