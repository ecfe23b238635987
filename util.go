package synx

import (
	"time"
	_ "unsafe" // for go:linkname
)

// noCopy may be embedded in structs which must not be copied after first
// use. It carries no state; its only job is to make `go vet -copylocks`
// flag accidental copies of the struct.
//
// See https://golang.org/issues/8005#issuecomment-190753527 for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// trySpin attempts one more round of active spinning and reports whether
// it did. It defers to the scheduler's own spin budget (GOMAXPROCS,
// current run queue length, and so on) rather than a fixed iteration
// count, so spin-then-park backoff stays appropriate across machine
// sizes.
func trySpin(spins *int) bool {
	if runtime_canSpin(*spins) {
		*spins++
		runtime_doSpin()
		return true
	}
	return false
}

// delay backs a spin-then-sleep wait loop: spin while the runtime thinks
// spinning is profitable, then fall back to a short sleep. The 500us
// figure follows folly's Sleeper backoff
// (https://github.com/facebook/folly/blob/main/folly/synchronization/detail/Sleeper.h):
// long enough to stop burning CPU under sustained contention, short
// enough not to show up as added latency.
func delay(spins *int) {
	if trySpin(spins) {
		return
	}
	*spins = 0
	time.Sleep(500 * time.Microsecond)
}

//go:linkname runtime_canSpin sync.runtime_canSpin
func runtime_canSpin(i int) bool

//go:linkname runtime_doSpin sync.runtime_doSpin
func runtime_doSpin()

//go:linkname runtime_semacquire sync.runtime_Semacquire
func runtime_semacquire(s *uint32)

//go:linkname runtime_semrelease sync.runtime_Semrelease
func runtime_semrelease(s *uint32, handoff bool, skipframes int)

// loadUint64Fast, loadUint32Fast and loadUintptrFast are plain (non-atomic)
// loads used only where the caller already holds the corresponding bit
// lock, so no concurrent writer can observe a torn value; they exist
// purely to make that precondition visible at the call site instead of
// paying for an atomic load that isn't needed.

//go:nosplit
func loadUint64Fast(addr *uint64) uint64 { return *addr }

//go:nosplit
func loadUint32Fast(addr *uint32) uint32 { return *addr }

//go:nosplit
func loadUintptrFast(addr *uintptr) uintptr { return *addr }
