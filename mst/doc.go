// Package mst builds the mutual-reachability minimum spanning tree the
// hierarchy builder consumes: a Prim-style MST over the implicit complete
// graph whose edge weight between u and v is
// mr(u,v) = max(core(u), core(v), dist(u,v)).
//
// Prim grows from vertex N-1 exactly as in the teacher's
// prim_kruskal.Prim, but cannot reuse that implementation: the teacher's
// Prim runs over an explicit, sparse *core.Graph with a min-heap of
// discovered edges, while this one runs over a dense N-point implicit
// graph where every pair of unattached vertices is a live candidate each
// iteration — a plain O(n^2) scan-and-relax, not a heap, is both simpler
// and (for dense mutual-reachability graphs) asymptotically no worse.
// What is reused is the teacher's shape: sentinel errors, an ordered edge
// list plus a mutable per-vertex adjacency list that HierarchyBuilder
// shrinks edge by edge.
package mst
