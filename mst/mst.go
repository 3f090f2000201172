package mst

import (
	"context"
	"math"
	"sort"

	"github.com/ojmakhura/hdbscan/distance"
	"github.com/ojmakhura/hdbscan/internal/workerpool"
)

// Edge is one edge of the spanning tree: the mutual-reachability distance
// between points A and B. A == B marks a self edge (core-distance loop),
// present only when Build was asked for selfEdges.
type Edge struct {
	A, B   int
	Weight float64
}

// MST is a mutual-reachability minimum spanning tree over N points, plus
// a mutable per-vertex adjacency list. HierarchyBuilder walks edges from
// heaviest to lightest, calling RemoveEdge as each is consumed, shrinking
// the adjacency in place.
type MST struct {
	n         int
	edges     []Edge
	adjacency [][]int
	selfEdges bool
}

// VertexCount returns N.
func (m *MST) VertexCount() int {
	return m.n
}

// EdgeCount returns the number of edges, including self edges if present.
func (m *MST) EdgeCount() int {
	return len(m.edges)
}

// Edges returns a copy of the edge list in build order: the N-1 tree
// edges in attachment order, followed by N self edges (if enabled).
func (m *MST) Edges() []Edge {
	cp := make([]Edge, len(m.edges))
	copy(cp, m.edges)

	return cp
}

// SortedAscending returns a copy of the edge list sorted by Weight
// ascending, ties broken by build order (stable).
func (m *MST) SortedAscending() []Edge {
	cp := m.Edges()
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].Weight < cp[j].Weight })

	return cp
}

// Neighbors returns a copy of v's current adjacency list.
func (m *MST) Neighbors(v int) []int {
	cp := make([]int, len(m.adjacency[v]))
	copy(cp, m.adjacency[v])

	return cp
}

// RemoveEdge detaches b from a's adjacency list and a from b's (a self
// edge, a == b, is detached once). It does not touch the Edges list,
// which stays the immutable build record.
func (m *MST) RemoveEdge(a, b int) error {
	if a < 0 || a >= m.n || b < 0 || b >= m.n {
		return ErrVertexOutOfRange
	}

	m.adjacency[a] = removeOne(m.adjacency[a], b)
	if a != b {
		m.adjacency[b] = removeOne(m.adjacency[b], a)
	}

	return nil
}

func removeOne(list []int, v int) []int {
	for i, x := range list {
		if x == v {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}

func mrDistance(store *distance.Store, a, b int) float64 {
	d := store.Get(a, b)
	if ca := store.CoreDistance(a); ca > d {
		d = ca
	}
	if cb := store.CoreDistance(b); cb > d {
		d = cb
	}

	return d
}

// Build grows a mutual-reachability MST over store's points with a
// scan-based Prim's algorithm, starting from vertex N-1. When selfEdges
// is true, a self edge (v, v, core(v)) is appended for every vertex after
// the N-1 tree edges, letting HierarchyBuilder treat leaf-cluster
// formation uniformly with internal splits.
//
// Each iteration has two phases: a relaxation scan, parallelized across
// workers since every unattached vertex's candidate distance is updated
// independently of the others; and a strictly sequential selection scan,
// ascending by vertex index with a <= comparison, so the lowest-weight
// unattached vertex wins ties by the highest index considered — matching
// a single fused sequential pass bit for bit.
//
// Complexity: O(n^2) time, O(n) extra space, fanned out across
// GOMAXPROCS workers for the relaxation phase only.
func Build(ctx context.Context, store *distance.Store, selfEdges bool) (*MST, error) {
	n := store.N()
	if n < 2 {
		return nil, ErrEmptyStore
	}

	attached := make([]bool, n)
	nearestDist := make([]float64, n)
	nearestNeighbor := make([]int, n)
	for v := 0; v < n; v++ {
		nearestDist[v] = math.Inf(1)
		nearestNeighbor[v] = -1
	}

	current := n - 1
	attached[current] = true

	edgesA := make([]int, 0, n-1)
	edgesB := make([]int, 0, n-1)
	weights := make([]float64, 0, n-1)

	for attachedCount := 1; attachedCount < n; attachedCount++ {
		cur := current

		err := workerpool.Run(ctx, n, 0, func(_ []float64, lo, hi int) error {
			for v := lo; v < hi; v++ {
				if attached[v] {
					continue
				}
				if d := mrDistance(store, cur, v); d < nearestDist[v] {
					nearestDist[v] = d
					nearestNeighbor[v] = cur
				}
			}

			return nil
		})
		if err != nil {
			return nil, err
		}

		best := -1
		bestDist := math.Inf(1)
		for v := 0; v < n; v++ {
			if attached[v] {
				continue
			}
			if nearestDist[v] <= bestDist {
				bestDist = nearestDist[v]
				best = v
			}
		}

		attached[best] = true
		edgesA = append(edgesA, nearestNeighbor[best])
		edgesB = append(edgesB, best)
		weights = append(weights, nearestDist[best])
		current = best
	}

	adjacency := make([][]int, n)
	edges := make([]Edge, 0, len(edgesA)+n)
	for i := range edgesA {
		a, b := edgesA[i], edgesB[i]
		adjacency[a] = append(adjacency[a], b)
		adjacency[b] = append(adjacency[b], a)
		edges = append(edges, Edge{A: a, B: b, Weight: weights[i]})
	}

	if selfEdges {
		for v := 0; v < n; v++ {
			adjacency[v] = append(adjacency[v], v)
			edges = append(edges, Edge{A: v, B: v, Weight: store.CoreDistance(v)})
		}
	}

	return &MST{n: n, edges: edges, adjacency: adjacency, selfEdges: selfEdges}, nil
}
