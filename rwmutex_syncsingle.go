package synx

import "sync/atomic"

// SyncSingleRWMutex is the reader-biased variant that drops the
// ThreadLocalRegistry entirely: instead of one isReading slot per reader
// goroutine, there is a single shared isReading flag. That collapses "wait
// for every reader to retract" into "wait for the one shared flag to read
// false", which is exact only while at most one goroutine holds the read
// side at a time: the flag holds whichever store came last, so with
// concurrent readers one reader's RUnlock clears it while another reader is
// still inside, and a waiting writer can then enter alongside that reader.
// It is kept as the baseline the original benchmark measured every other
// reader-biased variant against.
type SyncSingleRWMutex struct {
	_               noCopy
	writeRequested  atomic.Bool
	isReading       atomic.Bool
	readerDoneEvent Event
	writerDoneEvent Event
	csWriters       ExclusiveLock
}

// NewSyncSingleRWMutex returns a ready-to-use SyncSingleRWMutex. Both
// events are manual-reset and start signaled, matching the original's
// CreateEvent(..., manual=true, initial=true) for both handles.
func NewSyncSingleRWMutex() *SyncSingleRWMutex {
	m := &SyncSingleRWMutex{}
	m.readerDoneEvent = *NewEvent(true, true)
	m.writerDoneEvent = *NewEvent(true, true)
	return m
}

func (m *SyncSingleRWMutex) Lock() {
	m.csWriters.Lock()
	m.writerDoneEvent.Reset()
	m.writeRequested.Store(true)
	for m.isReading.Load() {
		m.readerDoneEvent.Wait()
	}
}

func (m *SyncSingleRWMutex) Unlock() {
	m.writeRequested.Store(false)
	m.writerDoneEvent.Set()
	m.csWriters.Unlock()
}

func (m *SyncSingleRWMutex) RLock() {
	m.isReading.Store(true)
	for m.writeRequested.Load() {
		m.isReading.Store(false)
		m.readerDoneEvent.Set()
		m.writerDoneEvent.Wait()
		m.isReading.Store(true)
	}
}

func (m *SyncSingleRWMutex) RUnlock() {
	m.isReading.Store(false)
	if m.writeRequested.Load() {
		m.readerDoneEvent.Set()
	}
}
