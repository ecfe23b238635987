package synx

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// PerReaderState is one record per participating reader goroutine, owned
// by the RWMutex that created it and enumerable only by its writer via
// ThreadLocalRegistry.Enumerate.
//
// isReading is the fast-path flag: set and cleared only by the owning
// goroutine, read by any writer walking the registry. readerDoneEvent lets
// a retracting reader wake a writer that is already waiting on it. The
// remaining fields are used only by the Cohort, FairCs and Ticketed
// variants and left zero by every other variant.
type PerReaderState struct {
	isReading       atomic.Bool
	readerDoneEvent Event

	// Cohort variant: position within the currently-admitted batch.
	readerOrder uint32

	// Ticketed variant: whether this goroutine currently holds a
	// "locked" (slow-path, queued-through) read, as opposed to one that
	// took the Ticketed fast path and never touched the queue lock at
	// all.
	isLockedReader bool

	// FairCs/Ticketed variants: whether this goroutine was the one that
	// took the writer-lock on behalf of its reader-cohort, and therefore
	// owes its release (after the last other reader's signal, if that
	// reader is still inside) when it exits.
	isFirstReader bool
}

// ThreadLocalRegistry maps goroutine identity to a PerReaderState,
// lazily creating entries on first use and supporting enumeration under
// the owning mutex's writer-exclusion lock.
//
// Unlike the concurrent map machinery elsewhere in this ecosystem, entries
// here are written only by their owning goroutine and read in bulk only by
// a writer that already holds the writer-exclusion lock — a plain
// sync.Map plus a writer-locked append-only slice is the right amount of
// concurrency control for that access pattern, not a lock-free hash table.
type ThreadLocalRegistry struct {
	_       noCopy
	states  sync.Map // goroutineID -> *PerReaderState
	all     []*PerReaderState
}

// Get returns the calling goroutine's PerReaderState, creating it on first
// call. Creation appends to the enumeration slice; callers of Get that are
// not already holding the owning mutex's writer-exclusion lock must pass
// one in via lockForAppend so the append race-free.
func (r *ThreadLocalRegistry) Get(lockForAppend sync.Locker) *PerReaderState {
	id := goroutineID()
	if v, ok := r.states.Load(id); ok {
		return v.(*PerReaderState)
	}

	lockForAppend.Lock()
	defer lockForAppend.Unlock()

	// Re-check: another goroutine sharing this id cannot happen, but a
	// racing call for the *same* id (recursive entry before the first
	// Store completed) is possible with some call patterns, so guard it.
	if v, ok := r.states.Load(id); ok {
		return v.(*PerReaderState)
	}
	st := &PerReaderState{}
	r.states.Store(id, st)
	r.all = append(r.all, st)
	return st
}

// Enumerate calls fn for every registered PerReaderState. The caller must
// already hold the owning mutex's writer-exclusion lock, which is the only
// thing preventing a concurrent Get from appending mid-enumeration.
func (r *ThreadLocalRegistry) Enumerate(fn func(*PerReaderState)) {
	for _, st := range r.all {
		fn(st)
	}
}

// goroutineID returns an identifier that is stable and distinct for the
// calling goroutine for as long as it is alive. It is derived by parsing
// the goroutine id out of a captured stack trace rather than poking at
// runtime internals through an unsafe offset. Get calls it on every
// lookup, hit or miss, so every RLock and RUnlock of a registry-based
// variant pays for one runtime.Stack capture; the registry caches the
// PerReaderState, not the id.
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return parseGoroutineID(buf[:n])
}

// parseGoroutineID extracts the numeric id from the "goroutine 123 [running]:"
// header runtime.Stack always writes first.
func parseGoroutineID(buf []byte) int64 {
	const prefix = "goroutine "
	if len(buf) < len(prefix) || string(buf[:len(prefix)]) != prefix {
		return 0
	}
	var id int64
	for _, c := range buf[len(prefix):] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + int64(c-'0')
	}
	return id
}
