package synx

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// rwlockFactories enumerates every RWMutex variant in this package so the
// boundary scenarios from this project's testable-properties section run
// identically across all of them.
func rwlockFactories() map[string]func() RWLock {
	return map[string]func() RWLock{
		"Spin":       func() RWLock { return &SpinRWMutex{} },
		"Fast":       func() RWLock { return NewFastRWMutex() },
		"Light":      func() RWLock { return &LightRWMutex{} },
		"SyncSingle": func() RWLock { return NewSyncSingleRWMutex() },
		"Slim":       func() RWLock { return &SlimRWMutex{} },
		"Cohort":     func() RWLock { return NewCohortRWMutex() },
		"FairQueued": func() RWLock { return NewFairQueuedRWMutex() },
		"FairCs":     func() RWLock { return NewFairCsRWMutex() },
		"Ticketed":   func() RWLock { return NewTicketedRWMutex() },
		"Recursive":  func() RWLock { return &RecursiveExclusiveLock{} },
	}
}

// runLoaded drives readers and writers against lock for d, incrementing
// shared counters under assertion guards, and returns how many operations
// each side completed. It fails the test immediately on any observed
// overlap between a write-region and anything else.
func runLoaded(t *testing.T, lock RWLock, readers, writers int, d time.Duration) (readOps, writeOps int64) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	var activeReaders, activeWriters int32
	var reads, writes int64
	var wg sync.WaitGroup

	wg.Add(readers + writers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				lock.RLock()
				atomic.AddInt32(&activeReaders, 1)
				if atomic.LoadInt32(&activeWriters) != 0 {
					t.Error("reader observed an active writer")
				}
				atomic.AddInt32(&activeReaders, -1)
				atomic.AddInt64(&reads, 1)
				lock.RUnlock()
			}
		}()
	}
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				lock.Lock()
				if atomic.AddInt32(&activeWriters, 1) != 1 {
					t.Error("more than one writer active")
				}
				if atomic.LoadInt32(&activeReaders) != 0 {
					t.Error("writer observed active readers")
				}
				atomic.AddInt32(&activeWriters, -1)
				atomic.AddInt64(&writes, 1)
				lock.Unlock()
			}
		}()
	}
	wg.Wait()
	return atomic.LoadInt64(&reads), atomic.LoadInt64(&writes)
}

func TestRWLock_ZeroReadersOneWriter(t *testing.T) {
	for name, newLock := range rwlockFactories() {
		t.Run(name, func(t *testing.T) {
			_, writes := runLoaded(t, newLock(), 0, 1, 200*time.Millisecond)
			if writes == 0 {
				t.Fatal("writer made no progress")
			}
		})
	}
}

func TestRWLock_OneReaderZeroWriters(t *testing.T) {
	for name, newLock := range rwlockFactories() {
		t.Run(name, func(t *testing.T) {
			reads, _ := runLoaded(t, newLock(), 1, 0, 200*time.Millisecond)
			if reads == 0 {
				t.Fatal("reader made no progress")
			}
		})
	}
}

func TestRWLock_ManyReadersOneWriter(t *testing.T) {
	for name, newLock := range rwlockFactories() {
		t.Run(name, func(t *testing.T) {
			reads, writes := runLoaded(t, newLock(), 10, 1, 200*time.Millisecond)
			if reads == 0 || writes == 0 {
				t.Fatalf("got reads=%d writes=%d, want both > 0", reads, writes)
			}
		})
	}
}

func TestRWLock_SingleReaderSingleWriter(t *testing.T) {
	for name, newLock := range rwlockFactories() {
		t.Run(name, func(t *testing.T) {
			reads, writes := runLoaded(t, newLock(), 1, 1, 200*time.Millisecond)
			if reads == 0 || writes == 0 {
				t.Fatalf("got reads=%d writes=%d, want both > 0", reads, writes)
			}
		})
	}
}

func TestCohortRWMutex_LoadedNoOverlap(t *testing.T) {
	lock := NewCohortRWMutex()
	reads, writes := runLoaded(t, lock, 8, 2, 300*time.Millisecond)
	if reads == 0 || writes == 0 {
		t.Fatalf("got reads=%d writes=%d, want both > 0", reads, writes)
	}
}
