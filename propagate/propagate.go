package propagate

import (
	"math"

	"github.com/ojmakhura/hdbscan/clusternode"
	"github.com/ojmakhura/hdbscan/ordset"
)

// Run propagates stability (excess of mass) bottom-up through clusters,
// a flat, label-indexed collection where index 0 is reserved nil and
// index 1 is the root. It returns true if any cluster's own stability
// reached +Inf, which happens when a zero-weight edge (duplicate input
// points) makes 1/level diverge; callers should surface this as a
// warning, not an error — the hierarchy itself is unaffected, only the
// excess-of-mass comparison downstream.
//
// Complexity: O(C log C) where C is the cluster count, strictly
// sequential — every mutation touches a shared parent node.
func Run(clusters []*clusternode.Node) bool {
	toExamine := ordset.NewIntSet()
	added := make([]bool, len(clusters))

	for label, c := range clusters {
		if c != nil && !c.HasChildren {
			toExamine.Insert(label)
			added[label] = true
		}
	}

	infinite := false

	for toExamine.Len() > 0 {
		label, _ := toExamine.PopLast()
		c := clusters[label]

		propagateOne(c, clusters)

		if math.IsInf(c.Stability, 1) {
			infinite = true
		}

		if c.Parent != clusternode.NoParent && !added[c.Parent] {
			toExamine.Insert(c.Parent)
			added[c.Parent] = true
		}
	}

	return infinite
}

// propagateOne lifts c's (or c's already-propagated descendants')
// stability and lowest child death level into its parent. A no-op for
// the root, whose Parent is clusternode.NoParent.
func propagateOne(c *clusternode.Node, clusters []*clusternode.Node) {
	if c.Parent == clusternode.NoParent {
		return
	}

	parent := clusters[c.Parent]

	if math.IsInf(c.PropagatedLowestChildDeathLevel, 1) {
		c.PropagatedLowestChildDeathLevel = c.DeathLevel
	}
	if c.PropagatedLowestChildDeathLevel < parent.PropagatedLowestChildDeathLevel {
		parent.PropagatedLowestChildDeathLevel = c.PropagatedLowestChildDeathLevel
	}

	switch {
	case !c.HasChildren || c.NumConstraintsSatisfied > c.PropagatedNumConstraintsSatisfied:
		adoptSelf(c, parent)
	case c.NumConstraintsSatisfied < c.PropagatedNumConstraintsSatisfied:
		adoptDescendants(c, parent)
	case c.Stability >= c.PropagatedStability:
		adoptSelf(c, parent)
	default:
		adoptDescendants(c, parent)
	}
}

func adoptSelf(c, parent *clusternode.Node) {
	parent.PropagatedNumConstraintsSatisfied += c.NumConstraintsSatisfied
	parent.PropagatedStability += c.Stability
	parent.PropagatedDescendants = append(parent.PropagatedDescendants, c.Label)
}

func adoptDescendants(c, parent *clusternode.Node) {
	parent.PropagatedNumConstraintsSatisfied += c.PropagatedNumConstraintsSatisfied
	parent.PropagatedStability += c.PropagatedStability
	parent.PropagatedDescendants = append(parent.PropagatedDescendants, c.PropagatedDescendants...)
}
