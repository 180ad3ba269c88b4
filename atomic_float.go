package arborx

import (
	"math"
	"sync/atomic"
)

// atomicFloat64 is a float64 cell supporting a monotone atomic-min update,
// backed by atomic.Uint64 over the IEEE-754 bit pattern. Between calls to
// Store, readers of the same cell see a monotone non-increasing sequence of
// values.
type atomicFloat64 struct {
	bits atomic.Uint64
}

func (a *atomicFloat64) Store(v float64) { a.bits.Store(math.Float64bits(v)) }
func (a *atomicFloat64) Load() float64   { return math.Float64frombits(a.bits.Load()) }

// Min atomically sets the cell to candidate if candidate is smaller than
// the current value.
func (a *atomicFloat64) Min(candidate float64) {
	for {
		cur := a.bits.Load()
		if candidate >= math.Float64frombits(cur) {
			return
		}
		if a.bits.CompareAndSwap(cur, math.Float64bits(candidate)) {
			return
		}
	}
}
