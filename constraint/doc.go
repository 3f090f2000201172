// Package constraint models the must-link/cannot-link semi-supervised
// constraints recognized by the clustering data model.
//
// The engine that turns a constraint set into per-cluster satisfaction
// counts (ClusterNode.NumConstraintsSatisfied) is intentionally absent —
// the original implementation this package is modeled on never finished
// it either (CalculateNumConstraintsSatisfied is a no-op there too). What
// this package keeps is the shape: the Kind enum, the Constraint type, and
// the counting hook, so the propagation tie-breaks in package propagate
// (which already branch on NumConstraintsSatisfied) have something typed
// to read from, and a future engine can populate the fields without
// touching hierarchy or propagate.
package constraint
