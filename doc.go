// Package hdbscan is split across nine subpackages, leaves first:
//
//	ordset/       — sorted, duplicate-free int set (the "ordered sequence"
//	                and "ordered set" primitives spec.md asks for, nothing more)
//	constraint/   — MustLink/CannotLink hook, intentionally unscored
//	clusternode/  — the condensed-hierarchy tree node
//	distance/     — lower-triangular pairwise distance matrix + core distances
//	mst/          — Prim's algorithm over the mutual-reachability graph
//	hierarchy/    — the edge-removal algorithm that builds the cluster tree
//	propagate/    — bottom-up stability propagation + prominent-cluster selection
//	stats/        — per-cluster quality statistics, outlier scoring, sorting
//	cmd/hdbscan-cli/ — a thin CLI driver around this package
//
// This root package is the façade: New builds a configured instance,
// Run clusters a dataset, Rerun reclusters the same dataset at a new
// minPts, and the accessors read back the most recent result.
package hdbscan
