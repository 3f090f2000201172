package distance

import (
	"context"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/ojmakhura/hdbscan/internal/workerpool"
)

// Store holds the lower-triangular pairwise Euclidean distance matrix for
// N points, plus the per-point core-distance vector.
//
// Invariants: Get(i,i) == 0 for all i; Get(i,j) == Get(j,i); distances is
// sized N(N-1)/2 and indexed by the triangular offset computed in off.
type Store struct {
	n             int
	distances     []float64 // triangular, size n*(n-1)/2
	coreDistances []float64 // size n
	minPts        int
}

// triangular returns n(n+1)/2, the standard triangular-number helper used
// by off to linearize the lower-triangular matrix.
func triangular(n int) int {
	return n * (n + 1) / 2
}

// off computes the linear index of (r, c) in the triangular buffer.
// r and c are interchangeable; off always resolves to the same cell for
// (r,c) and (c,r).
func off(n, r, c int) int {
	lo, hi := r, c
	if lo > hi {
		lo, hi = hi, lo
	}

	return n*lo + hi - triangular(lo+1)
}

// N returns the number of points this Store was built for.
func (s *Store) N() int {
	return s.n
}

// Get returns the distance between points i and j in O(1).
func (s *Store) Get(i, j int) float64 {
	if i == j {
		return 0
	}

	return s.distances[off(s.n, i, j)]
}

// CoreDistance returns the (minPts-1)-th nearest-neighbor distance for
// point i, as last computed by Compute or RefreshCore.
func (s *Store) CoreDistance(i int) float64 {
	return s.coreDistances[i]
}

// CoreDistances returns the full core-distance vector. Callers must treat
// it as read-only; it is the Store's live backing slice.
func (s *Store) CoreDistances() []float64 {
	return s.coreDistances
}

// Compute builds the pairwise distance matrix and core-distance vector for
// the N points of dimension d packed row-major in data (data[i*d+k] is
// coordinate k of point i), for the given minPts.
//
// Fails with ErrTooFewPoints if n < 2, ErrBadDimension if d <= 0, or
// ErrMinPointsTooLarge if minPts > n.
// Complexity: O(n^2 * d) time, O(n^2) space, fanned out across GOMAXPROCS
// workers.
func Compute(ctx context.Context, data []float64, n, d, minPts int) (*Store, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if d <= 0 {
		return nil, ErrBadDimension
	}
	if minPts > n {
		return nil, ErrMinPointsTooLarge
	}

	s := &Store{
		n:         n,
		distances: make([]float64, n*(n-1)/2),
		minPts:    minPts,
	}

	if err := s.fillPairwise(ctx, data, d); err != nil {
		return nil, err
	}
	if err := s.RefreshCore(ctx, minPts); err != nil {
		return nil, err
	}

	return s, nil
}

// fillPairwise computes every unordered pair's Euclidean distance,
// fanning the outer loop (over row i) across workers. Each worker writes
// only to indices its own rows own, so no locking is required.
func (s *Store) fillPairwise(ctx context.Context, data []float64, d int) error {
	n := s.n

	return workerpool.Run(ctx, n, d, func(pointI []float64, lo, hi int) error {
		for i := lo; i < hi; i++ {
			copy(pointI, data[i*d:(i+1)*d])
			for j := i + 1; j < n; j++ {
				pointJ := data[j*d : (j+1)*d]
				s.distances[off(n, i, j)] = floats.Distance(pointI, pointJ, 2)
			}
		}

		return nil
	})
}

// RefreshCore recomputes only coreDistances from the existing distances
// buffer, for a new minPts — the rerun path (spec.md §5/§6).
// Complexity: O(n^2 log n) time (per-row sort), O(n) extra space per
// worker, fanned out across GOMAXPROCS workers.
func (s *Store) RefreshCore(ctx context.Context, minPts int) error {
	if minPts > s.n {
		return ErrMinPointsTooLarge
	}

	n := s.n
	s.minPts = minPts
	core := make([]float64, n)

	err := workerpool.Run(ctx, n, n, func(row []float64, lo, hi int) error {
		for i := lo; i < hi; i++ {
			for j := 0; j < n; j++ {
				row[j] = s.Get(i, j)
			}
			sort.Float64s(row)
			core[i] = row[minPts-1]
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.coreDistances = core

	return nil
}
