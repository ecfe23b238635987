// Package opt holds small zero-allocation building blocks shared by the
// synchronization primitives in the parent package: cache-line padding and
// a thin wrapper around the Go runtime's own semaphore implementation.
package opt

import (
	_ "unsafe" // for go:linkname
)

// Sema is a zero-allocation binary/counting parking primitive. It is a
// direct wrapper around the runtime semaphore used internally by
// sync.Mutex and sync.WaitGroup, which already does FIFO wakeup without
// the thundering-herd problem a condition variable has.
type Sema uint32

// Acquire blocks until a matching Release has happened.
//
//go:nosplit
func (s *Sema) Acquire() {
	runtime_semacquire((*uint32)(s))
}

// Release wakes one goroutine blocked in Acquire, or leaves a pending
// wakeup for the next Acquire if none is currently waiting.
//
//go:nosplit
func (s *Sema) Release() {
	runtime_semrelease((*uint32)(s), false, 0)
}

//go:linkname runtime_semacquire sync.runtime_Semacquire
func runtime_semacquire(s *uint32)

//go:linkname runtime_semrelease sync.runtime_Semrelease
func runtime_semrelease(s *uint32, handoff bool, skipframes int)
