// Package propagate turns a built cluster tree into the flat partition
// HDBSCAN* actually reports. Run walks every leaf cluster upward
// exactly once, accumulating stability (and, were it ever populated,
// constraint-satisfaction counts) into each parent and deciding — per
// cluster, via the excess-of-mass tie-break — whether a parent should
// inherit a child's own identity or the child's already-propagated
// descendants. SelectProminent then reads the root's accumulated
// propagatedDescendants as the chosen partition and resolves each
// selected cluster's member points from the hierarchy snapshot recorded
// just after that cluster was born.
package propagate
