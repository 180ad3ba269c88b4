package main

import (
	"errors"

	"github.com/kursatyurt/ArborX"
)

// exitCodeFor classifies a command error per the CLI's documented exit
// codes: the engine's validation sentinels (empty input, negative eps, or an
// out-of-range k, core-min-size or cluster-min-size) exit 1; anything else —
// a stalled engine, a BVH capacity error, a verification mismatch, an
// unreadable file or malformed CSV row, a flag-parsing error — exits 2.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	switch {
	case errors.Is(err, arborx.ErrEmptyInput),
		errors.Is(err, arborx.ErrNegativeEps),
		errors.Is(err, arborx.ErrInvalidK),
		errors.Is(err, arborx.ErrInvalidCoreMinSize),
		errors.Is(err, arborx.ErrInvalidClusterMinSize):
		return 1
	default:
		return 2
	}
}
