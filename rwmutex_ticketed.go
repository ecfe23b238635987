package synx

import (
	"sync/atomic"

	"github.com/synctbench/urwmutex/internal/opt"
)

// TicketedRWMutex extends FairCsRWMutex with a fast path: a monotonically
// increasing ticket counter records how many writer turns have happened,
// and a reader compares the current ticket against the ticket stamped by
// the last reader cohort to run. If no writer has queued since then (the
// two tickets differ by at most one), the reader skips the queue lock
// entirely — giving it FairCs's ordering guarantee only when a writer is
// actually contending, and the reader-biased family's near-zero cost
// otherwise.
type TicketedRWMutex struct {
	_                noCopy
	ticket           atomic.Int64
	_                opt.Pad
	lastReaderTicket atomic.Int64
	_                opt.Pad
	writeRequested   atomic.Bool
	_                opt.Pad
	readerCount      atomic.Int64

	queue                 TicketLock
	x                     ExclusiveLock
	lastLockedReaderEvent Event
	registry              ThreadLocalRegistry
}

// NewTicketedRWMutex returns a ready-to-use TicketedRWMutex.
func NewTicketedRWMutex() *TicketedRWMutex {
	m := &TicketedRWMutex{}
	m.lastLockedReaderEvent = *NewEvent(false, false)
	return m
}

func (m *TicketedRWMutex) Lock() {
	m.queue.Lock()
	m.ticket.Add(2)
	m.x.Lock()
	m.writeRequested.Store(true)
	m.queue.Unlock()
	m.registry.Enumerate(func(st *PerReaderState) {
		for st.isReading.Load() {
			st.readerDoneEvent.Wait()
		}
	})
}

func (m *TicketedRWMutex) Unlock() {
	m.writeRequested.Store(false)
	m.x.Unlock()
}

func (m *TicketedRWMutex) RLock() {
	st := m.registry.Get(&m.x)
	st.isReading.Store(true)

	lastReaderTicket := m.lastReaderTicket.Load()
	ticket := m.ticket.Load()
	if ticket-lastReaderTicket <= 1 {
		return
	}

	readerRetract(st)
	m.queue.Lock()
	if m.readerCount.Add(1) == 1 {
		m.x.Lock()
		newTicket := m.ticket.Add(1)
		m.lastReaderTicket.Store(newTicket)
		st.isLockedReader = true
		st.isFirstReader = true
	} else {
		st.isLockedReader = true
	}
	st.isReading.Store(true)
	m.queue.Unlock()
}

func (m *TicketedRWMutex) RUnlock() {
	st := m.registry.Get(&m.x)
	st.isReading.Store(false)

	if st.isLockedReader {
		st.isLockedReader = false
		if m.readerCount.Add(-1) == 0 {
			if st.isFirstReader {
				st.isFirstReader = false
				m.x.Unlock()
			} else {
				m.lastLockedReaderEvent.Set()
			}
		} else if st.isFirstReader {
			m.lastLockedReaderEvent.Wait()
			st.isFirstReader = false
			m.x.Unlock()
		}
	}

	if m.writeRequested.Load() {
		st.readerDoneEvent.Set()
	}
}
