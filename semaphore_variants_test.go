package synx

import (
	"sync"
	"testing"
	"time"
)

// acquireReleaser is satisfied by every semaphore variant that exposes the
// single-permit Acquire()/Release(1) shape used by UnslowSemaphore,
// CsevSemaphore, FastStSemaphore and Csev2Semaphore.
type acquireReleaser interface {
	Acquire()
	Release(int64)
}

func testSemaphoreVariant(t *testing.T, name string, s acquireReleaser) {
	t.Run(name+"/basic", func(t *testing.T) {
		done := make(chan struct{})
		go func() {
			s.Acquire()
			close(done)
		}()

		select {
		case <-done:
			t.Fatal("Acquire returned before Release")
		case <-time.After(20 * time.Millisecond):
		}

		s.Release(1)
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("Acquire did not return after Release")
		}
	})

	t.Run(name+"/balance", func(t *testing.T) {
		const n = 20
		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func() {
				defer wg.Done()
				s.Acquire()
			}()
		}
		time.Sleep(20 * time.Millisecond)
		s.Release(n)
		waitOrTimeout(t, &wg, 200*time.Millisecond, name+": not all waiters woke up")
	})
}

func TestUnslowSemaphore(t *testing.T) {
	testSemaphoreVariant(t, "UnslowSemaphore", NewUnslowSemaphore(0))
}

func TestCsevSemaphore(t *testing.T) {
	testSemaphoreVariant(t, "CsevSemaphore", NewCsevSemaphore(0))
}

func TestFastStSemaphore(t *testing.T) {
	testSemaphoreVariant(t, "FastStSemaphore", NewFastStSemaphore(0))
}

func TestCsev2Semaphore(t *testing.T) {
	testSemaphoreVariant(t, "Csev2Semaphore", NewCsev2Semaphore(0))
}

func TestCsevSemaphore_ReleasePanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Release(0) should panic")
		}
	}()
	NewCsevSemaphore(0).Release(0)
}
