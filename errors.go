package arborx

import "errors"

// Validation errors. These are raised before any allocation, per the
// caller-is-at-fault policy: N < 1, eps < 0, k < 1, core_min_size < 1,
// cluster_min_size < 2.
var (
	// ErrEmptyInput is returned when N < 1.
	ErrEmptyInput = errors.New("arborx: at least one point is required")

	// ErrNegativeEps is returned when eps < 0.
	ErrNegativeEps = errors.New("arborx: eps must be >= 0")

	// ErrInvalidK is returned when k < 1.
	ErrInvalidK = errors.New("arborx: k must be >= 1")

	// ErrInvalidCoreMinSize is returned when core_min_size < 1.
	ErrInvalidCoreMinSize = errors.New("arborx: core_min_size must be >= 1")

	// ErrInvalidClusterMinSize is returned when cluster_min_size < 2.
	ErrInvalidClusterMinSize = errors.New("arborx: cluster_min_size must be >= 2")
)

// ErrStackOverflow is a capacity error: the BVH is deeper than the
// traversal stack the kernels were compiled with.
var ErrStackOverflow = errors.New("arborx: bvh depth exceeds traversal stack capacity")

// ErrBoruvkaStalled is a stall error: a Borůvka round completed without
// adding a single edge while more than one component remained. This
// indicates either a non-admissible metric (m(i,j,d) < d) or a defect; the
// engine fails rather than looping forever.
var ErrBoruvkaStalled = errors.New("arborx: boruvka round stalled with no new edges")
