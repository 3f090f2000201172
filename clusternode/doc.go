// Package clusternode defines the Node type at the heart of the condensed
// cluster tree: a tagged node with stability accumulators and the state
// the propagation pass (package propagate) mutates in place.
//
// The tree itself is never represented as a pointer graph. Every Node
// lives in a flat, label-indexed collection owned by the hdbscan run
// (package hierarchy builds it, package propagate and the root package
// read it); Parent and PropagatedDescendants are plain label ints, not
// pointers, so the collection can be cloned, inspected, or torn down
// without untangling a cycle — the same "owner holds a flat map, links
// are non-owning indices" shape the teacher's core.Graph uses for its
// adjacencyList.
package clusternode
