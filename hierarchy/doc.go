// Package hierarchy is the algorithmic heart of the clustering run: it
// walks a mutual-reachability MST from its heaviest edge to its
// lightest, removing edges in equal-weight batches and watching the
// graph fall apart into components. When two or more components at or
// above minPoints appear in one batch (a split), each becomes a child
// cluster; when only one does (a shrink), its points stay in the parent
// and no child is minted. Anything smaller, or with no edges at all,
// becomes noise.
//
// Every batch that removes an edge touching a live cluster produces one
// HierarchyEntry — a snapshot of every point's cluster label just before
// the batch took effect — unless compactHierarchy drops it because
// neither it nor the level before it minted a new cluster. Builder owns the flat, label-indexed cluster
// collection for the whole run; parent links and the running point-level
// noise bookkeeping (PointNoiseLevel, PointLastCluster) live here too,
// ready for StatsEngine's outlier scoring.
package hierarchy
