package synx

import (
	"sync"
	"testing"
	"time"
)

func TestEvent_ManualReset(t *testing.T) {
	e := NewEvent(true, false)
	if e.IsSet() {
		t.Fatal("new manual event should not be signaled")
	}

	done := make(chan struct{})
	go func() {
		e.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before Set")
	case <-time.After(20 * time.Millisecond):
	}

	e.Set()
	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Wait did not return after Set")
	}

	if !e.IsSet() {
		t.Fatal("manual event should stay signaled")
	}

	// A manual-reset event wakes every waiter, not just one.
	var wg sync.WaitGroup
	const n = 10
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			e.Wait()
		}()
	}
	waitOrTimeout(t, &wg, 100*time.Millisecond, "manual event did not wake all waiters")

	e.Reset()
	if e.IsSet() {
		t.Fatal("event should not be signaled after Reset")
	}
}

func TestEvent_AutoReset(t *testing.T) {
	e := NewEvent(false, false)

	done := make(chan struct{})
	go func() {
		e.Wait()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	e.Set()
	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Wait did not return after Set")
	}

	// A second Set with nobody waiting yet leaves exactly one pending
	// wakeup, consumed by the next Wait.
	e.Set()
	waited := make(chan struct{})
	go func() {
		e.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("pending auto-reset signal was lost")
	}
}

func waitOrTimeout(t *testing.T, wg *sync.WaitGroup, d time.Duration, msg string) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal(msg)
	}
}
