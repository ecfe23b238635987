package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize_ is used to pad hot atomic fields apart so that a writer's
// writeRequested flag and a reader's isReading slot never share a cache
// line; without it a writer polling one and a reader writing the other
// would ping-pong the same line between cores.
const CacheLineSize_ = unsafe.Sizeof(cpu.CacheLinePad{})

// Pad is CacheLineSize_ bytes. Embed it after a hot field to push whatever comes next onto its own
// cache line:
//
//	type state struct {
//	    writeRequested atomic.Bool
//	    _              opt.Pad
//	    readerCount    atomic.Int64
//	}
type Pad [CacheLineSize_]byte
