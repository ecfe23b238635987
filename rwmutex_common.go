package synx

import "sync/atomic"

// The reader-biased RWMutex variants in this package share one
// acquire/release skeleton and differ mainly in how a retracted reader
// waits for the writer to finish. These helpers hold that shared skeleton:
// Fast and Light use all of them, Cohort uses all but readerRelease, and
// Spin uses only readerFastPathEnter. SyncSingle (one shared flag, no
// registry) and Slim (a sync.RWMutex wrapper) use none of them.

// readerFastPathEnter publishes isReading=true and checks writeRequested.
// It returns true if the reader is in (no writer pending). This is the
// zero-contention path: one goroutine-local store, one load, no atomic
// read-modify-write, no syscall.
func readerFastPathEnter(st *PerReaderState, writeRequested *atomic.Bool) bool {
	st.isReading.Store(true)
	return !writeRequested.Load()
}

// readerRetract undoes the fast-path publish and wakes any writer that is
// already waiting on this reader's done-event.
func readerRetract(st *PerReaderState) {
	st.isReading.Store(false)
	st.readerDoneEvent.Set()
}

// readerRelease is the common RUnlock body: clear isReading, and if a
// writer might be waiting on this exact reader, signal it.
func readerRelease(st *PerReaderState, writeRequested *atomic.Bool) {
	st.isReading.Store(false)
	if writeRequested.Load() {
		st.readerDoneEvent.Set()
	}
}

// writerAcquireCommon performs the writer-side handshake shared by every
// reader-biased variant: take the writer-exclusion lock, raise
// writeRequested, then wait out every reader currently mid-critical-section.
// wde, if non-nil, is reset before writeRequested is raised so that any
// reader retracting after this point waits on a writer-done event that is
// guaranteed not to already be signaled from a previous writer.
func writerAcquireCommon(x *ExclusiveLock, writeRequested *atomic.Bool, registry *ThreadLocalRegistry, wde *Event) {
	x.Lock()
	if wde != nil {
		wde.Reset()
	}
	writeRequested.Store(true)
	registry.Enumerate(func(st *PerReaderState) {
		for st.isReading.Load() {
			st.readerDoneEvent.Wait()
		}
	})
}

// writerReleaseCommon lowers writeRequested, signals wde if present, and
// releases the writer-exclusion lock, in that order, matching §4.4's
// writer-release algorithm.
func writerReleaseCommon(x *ExclusiveLock, writeRequested *atomic.Bool, wde *Event) {
	writeRequested.Store(false)
	if wde != nil {
		wde.Set()
	}
	x.Unlock()
}
