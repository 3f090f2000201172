// Package distance implements the DistanceStore: a lazy lower-triangular
// pairwise Euclidean distance matrix plus the per-point core-distance
// vector (distance to the (minPts-1)-th nearest neighbor).
//
// The pairwise fill and the per-row core-distance sort are the two loops
// spec.md explicitly allows to run in parallel (every other stage in the
// pipeline is sequential because it mutates shared state). Both loops
// fan out via golang.org/x/sync/errgroup, bounded to GOMAXPROCS workers,
// each owning its own scratch row buffer — the same "allocate once per
// worker" discipline the spec calls for, reusing the teacher's
// sync.WaitGroup-fan-out idiom (core/concurrency_test.go) but upgraded to
// propagate allocation failures instead of swallowing them.
package distance
