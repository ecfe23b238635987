package synx

import "sync/atomic"

// FairCsRWMutex gives writers fair queueing (a writer waiting for readers
// to drain cannot be jumped by readers that arrive after it) by making
// every new reader pass through a queue lock before joining the current
// reader cohort. Only the first reader of a cohort actually takes the
// writer-exclusion lock; every later reader in the same cohort just
// increments a count and returns, and only the last one out either
// releases the writer lock itself (if it was first) or wakes whichever
// reader was first so that one can release it.
type FairCsRWMutex struct {
	_                     noCopy
	readerCount           atomic.Int64
	queue                 TicketLock
	x                     ExclusiveLock
	lastLockedReaderEvent Event
	registry              ThreadLocalRegistry
}

// NewFairCsRWMutex returns a ready-to-use FairCsRWMutex.
func NewFairCsRWMutex() *FairCsRWMutex {
	m := &FairCsRWMutex{}
	m.lastLockedReaderEvent = *NewEvent(false, false)
	return m
}

func (m *FairCsRWMutex) Lock() {
	m.queue.Lock()
	m.x.Lock()
	m.queue.Unlock()
}

func (m *FairCsRWMutex) Unlock() {
	m.x.Unlock()
}

func (m *FairCsRWMutex) RLock() {
	st := m.registry.Get(&m.queue)
	m.queue.Lock()
	if m.readerCount.Add(1) == 1 {
		m.x.Lock()
		st.isFirstReader = true
	}
	m.queue.Unlock()
}

func (m *FairCsRWMutex) RUnlock() {
	st := m.registry.Get(&m.queue)
	if m.readerCount.Add(-1) == 0 {
		if st.isFirstReader {
			m.x.Unlock()
			st.isFirstReader = false
		} else {
			m.lastLockedReaderEvent.Set()
		}
	} else if st.isFirstReader {
		m.lastLockedReaderEvent.Wait()
		st.isFirstReader = false
		m.x.Unlock()
	}
}
