// Package ordset provides a sorted, duplicate-free sequence of ints.
//
// It is the one container the hierarchy/propagate packages need that the
// standard library does not supply directly: a set with deterministic,
// ascending iteration order and O(log n) membership. Internally it is a
// single sorted []int with binary-search insert/remove — no red-black
// tree, no hashing, no dependency on a generic container library (the
// sets here hold point indices or cluster labels, at most one cluster's
// points at a time).
//
// IntSet is not safe for concurrent use; callers that need concurrent
// mutation should guard it externally, the way core.Graph guards its own
// maps with sync.RWMutex.
package ordset
