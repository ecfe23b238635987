// Package bench drives the reader-writer mutex variants defined in the
// root synx package through a timed, multi-goroutine load and reports
// throughput. It is the consumer referenced throughout this project's
// design notes as the reason every variant implements the same RWLock
// contract.
package bench

import (
	"fmt"

	"github.com/synctbench/urwmutex"
)

// Variant names a constructible RWLock implementation by the name users
// pass on the command line.
type Variant string

const (
	VariantSpin       Variant = "spin"
	VariantFast       Variant = "fast"
	VariantLight      Variant = "light"
	VariantSyncSingle Variant = "sync-single"
	VariantSlim       Variant = "slim"
	VariantCohort     Variant = "cohort"
	VariantFairQueued Variant = "fair-queued"
	VariantFairCs     Variant = "fair-cs"
	VariantTicketed   Variant = "ticketed"
	VariantRecursive  Variant = "recursive"
)

// AllVariants lists every registered variant name, in the order the CLI
// reports them in a "run everything" pass.
func AllVariants() []Variant {
	return []Variant{
		VariantSpin, VariantFast, VariantLight, VariantSyncSingle, VariantSlim,
		VariantCohort, VariantFairQueued, VariantFairCs, VariantTicketed,
		VariantRecursive,
	}
}

var constructors = map[Variant]func() synx.RWLock{
	VariantSpin:       func() synx.RWLock { return &synx.SpinRWMutex{} },
	VariantFast:       func() synx.RWLock { return synx.NewFastRWMutex() },
	VariantLight:      func() synx.RWLock { return &synx.LightRWMutex{} },
	VariantSyncSingle: func() synx.RWLock { return synx.NewSyncSingleRWMutex() },
	VariantSlim:       func() synx.RWLock { return &synx.SlimRWMutex{} },
	VariantCohort:     func() synx.RWLock { return synx.NewCohortRWMutex() },
	VariantFairQueued: func() synx.RWLock { return synx.NewFairQueuedRWMutex() },
	VariantFairCs:     func() synx.RWLock { return synx.NewFairCsRWMutex() },
	VariantTicketed:   func() synx.RWLock { return synx.NewTicketedRWMutex() },
	VariantRecursive:  func() synx.RWLock { return &synx.RecursiveExclusiveLock{} },
}

// New constructs a fresh instance of the named variant.
func New(name Variant) (synx.RWLock, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("bench: unknown variant %q", name)
	}
	return ctor(), nil
}
