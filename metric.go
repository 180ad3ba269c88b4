package arborx

// Metric is a pluggable binary distance functor over point indices. A valid
// metric must satisfy m(i, j, d) >= d, where d is the Euclidean distance
// between i and j, so that BVH pruning by box distance remains sound (a box
// can only be discarded once the true Euclidean lower bound already exceeds
// the current radius).
type Metric interface {
	Distance(i, j int, euclideanDist float64) float64
}

// Euclidean is the identity metric: it returns the Euclidean distance
// unchanged.
type Euclidean struct{}

func (Euclidean) Distance(_, _ int, euclideanDist float64) float64 { return euclideanDist }

// MutualReachability implements the HDBSCAN* mutual reachability distance:
// max(core_k(i), core_k(j), euclideanDist). CoreDistance must have one entry
// per point, populated by a k-NN query against the same point set.
type MutualReachability struct {
	CoreDistance []float64
}

func (m MutualReachability) Distance(i, j int, euclideanDist float64) float64 {
	d := euclideanDist
	if m.CoreDistance[i] > d {
		d = m.CoreDistance[i]
	}
	if m.CoreDistance[j] > d {
		d = m.CoreDistance[j]
	}
	return d
}
