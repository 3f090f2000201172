// Package clusternode: node.go defines Node, its sentinel errors, and the
// three mutators (Detach, AddToVirtualChild, ReleaseVirtualChild);
// HierarchyBuilder calls the first two while walking the tree.
package clusternode

import (
	"errors"
	"fmt"
	"math"

	"github.com/ojmakhura/hdbscan/ordset"
)

// NoParent is the sentinel Parent value for the root cluster (label 1) and
// for the unused index-0 (noise) slot. It doubles as "index 0 is always
// nil" in the flat collection: no real cluster other than label 1 ever has
// Parent == NoParent.
const NoParent = 0

// ErrNegativePoints indicates Detach would drive NumPoints below zero —
// an MST/labels disagreement upstream. Fatal; the caller is expected to
// surface this as a LogicError naming the offending label.
var ErrNegativePoints = errors.New("clusternode: detach would make numPoints negative")

// NegativePointsError is the structured form of ErrNegativePoints,
// carrying the offending cluster's label so callers can build a
// diagnostic without parsing the error string.
type NegativePointsError struct {
	Label     int
	NumPoints int
}

func (e *NegativePointsError) Error() string {
	return fmt.Sprintf("clusternode: cluster %d has %d points", e.Label, e.NumPoints)
}

func (e *NegativePointsError) Unwrap() error {
	return ErrNegativePoints
}

// Node is one cluster in the condensed hierarchy.
//
// Lifecycle: created once by HierarchyBuilder with Label, Parent,
// BirthLevel and an initial NumPoints; DeathLevel stays 0 while the
// cluster is alive. StabilityPropagator later fills in the Propagated*
// fields in a single bottom-up pass; nothing mutates them afterward.
type Node struct {
	// Label uniquely identifies this cluster within its run. Label 0 is
	// reserved for the noise placeholder (never a real Node); label 1 is
	// the initial root; labels >= 2 are assigned as clusters are born.
	Label int

	// Parent is the label of the enclosing cluster, or NoParent for the
	// root. Never an owning reference: the flat collection owns every Node.
	Parent int

	// BirthLevel is the edge weight at which this cluster first existed as
	// a distinct component. NaN for the root (it never "was born").
	BirthLevel float64

	// DeathLevel is the edge weight at which the cluster lost its last
	// point; 0 while the cluster is still alive.
	DeathLevel float64

	// NumPoints is the number of points currently attached to the cluster.
	// Must never go negative; see Detach.
	NumPoints int

	// Stability accumulates sum(1/level - 1/BirthLevel) over every point
	// that has ever left this cluster.
	Stability float64

	// PropagatedStability and PropagatedNumConstraintsSatisfied are filled
	// in by StabilityPropagator's single bottom-up pass.
	PropagatedStability               float64
	PropagatedNumConstraintsSatisfied int

	// PropagatedLowestChildDeathLevel tracks the minimum DeathLevel over
	// this cluster's own propagation result and all its descendants.
	// Starts at +Inf (spec's "uninitialized distance" sentinel, preferred
	// here as math.Inf(1) over a magic float so the infinite-stability
	// warning has an unambiguous trigger: Stability reaching +Inf).
	PropagatedLowestChildDeathLevel float64

	// NumConstraintsSatisfied counts must-link/cannot-link constraints this
	// cluster currently satisfies. Always 0 until a constraint engine is
	// wired in (package constraint); the tie-break logic in propagate
	// still reads it so that wiring one in later needs no changes here.
	NumConstraintsSatisfied int

	// HasChildren is set true on the PARENT the moment any child cluster
	// is minted beneath it (never on the child itself at creation time).
	// A cluster with HasChildren == false is a leaf and seeds the
	// propagation worklist.
	HasChildren bool

	// VirtualChildCluster holds the "would-be" child this cluster would
	// become if it died entirely as a single noise component, tracked so
	// a future constraint engine can evaluate satisfaction against it.
	// Release with ReleaseVirtualChild once no longer needed.
	VirtualChildCluster *ordset.IntSet

	// PropagatedDescendants is the list of descendant cluster labels this
	// node contributes to the flat partition, built by StabilityPropagator
	// and read once by ProminentSelector from the root.
	PropagatedDescendants []int

	// Offset is the hierarchy-level id at which this cluster was born;
	// ProminentSelector looks up per-point labels at Offset+1.
	Offset int64
}

// New constructs a Node with BirthLevel, zeroed DeathLevel/Stability, and
// PropagatedLowestChildDeathLevel seeded to +Inf per spec.
// Complexity: O(1).
func New(label, parent int, birthLevel float64, numPoints int) *Node {
	return &Node{
		Label:                           label,
		Parent:                          parent,
		BirthLevel:                      birthLevel,
		NumPoints:                       numPoints,
		PropagatedLowestChildDeathLevel: math.Inf(1),
		VirtualChildCluster:             ordset.NewIntSet(),
	}
}

// Detach removes n points from the cluster at the given edge weight
// level, accumulating stability and, if the cluster just emptied out,
// recording its DeathLevel.
//
// Contract: count must not exceed NumPoints; violating that is the one fatal
// LogicError condition in the whole pipeline (spec §7).
// Complexity: O(1).
func (n *Node) Detach(count int, level float64) error {
	n.NumPoints -= count
	n.Stability += float64(count) * (1/level - 1/n.BirthLevel)

	switch {
	case n.NumPoints == 0:
		n.DeathLevel = level
	case n.NumPoints < 0:
		return &NegativePointsError{Label: n.Label, NumPoints: n.NumPoints}
	}

	return nil
}

// AddToVirtualChild unions points into the virtual child set.
// Complexity: O(k log m) for k new points against m existing members.
func (n *Node) AddToVirtualChild(points []int) {
	n.VirtualChildCluster.InsertAll(points)
}

// ReleaseVirtualChild frees the virtual child set. Must only be called
// after any constraint-satisfaction accounting against it has completed.
// Complexity: O(1).
func (n *Node) ReleaseVirtualChild() {
	n.VirtualChildCluster = ordset.NewIntSet()
}

// IsLeaf reports whether this cluster has no children, i.e. it seeds the
// StabilityPropagator worklist.
// Complexity: O(1).
func (n *Node) IsLeaf() bool {
	return !n.HasChildren
}
