package propagate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ojmakhura/hdbscan/clusternode"
	"github.com/ojmakhura/hdbscan/propagate"
)

func TestRunLiftsLeafStabilityIntoParent(t *testing.T) {
	root := clusternode.New(1, clusternode.NoParent, math.NaN(), 10)
	root.HasChildren = true
	c2 := clusternode.New(2, 1, 5.0, 4)
	c2.Stability = 2.0
	c2.DeathLevel = 1.0
	c3 := clusternode.New(3, 1, 5.0, 6)
	c3.Stability = 3.0
	c3.DeathLevel = 2.0

	clusters := []*clusternode.Node{nil, root, c2, c3}

	infinite := propagate.Run(clusters)
	require.False(t, infinite)
	require.InDelta(t, 5.0, root.PropagatedStability, 1e-9)
	require.ElementsMatch(t, []int{2, 3}, root.PropagatedDescendants)
	require.InDelta(t, 1.0, root.PropagatedLowestChildDeathLevel, 1e-9)
}

func TestRunDetectsInfiniteStability(t *testing.T) {
	root := clusternode.New(1, clusternode.NoParent, math.NaN(), 3)
	root.HasChildren = true
	c2 := clusternode.New(2, 1, 5.0, 3)
	c2.Stability = math.Inf(1)
	c2.DeathLevel = 0

	clusters := []*clusternode.Node{nil, root, c2}

	require.True(t, propagate.Run(clusters))
}

func TestRunPrefersDescendantsOverParentOnLowerStability(t *testing.T) {
	// root -> mid -> leaf. leaf's own stability is large, mid's own
	// stability (excluding leaf) is small: mid should propagate leaf's
	// accumulated stability upward rather than its own.
	root := clusternode.New(1, clusternode.NoParent, math.NaN(), 20)
	root.HasChildren = true
	mid := clusternode.New(2, 1, 10.0, 15)
	mid.HasChildren = true
	mid.Stability = 0.1
	mid.DeathLevel = 0

	leaf := clusternode.New(3, 2, 5.0, 8)
	leaf.Stability = 9.0
	leaf.DeathLevel = 1.0

	clusters := []*clusternode.Node{nil, root, mid, leaf}

	propagate.Run(clusters)

	require.InDelta(t, 9.0, mid.PropagatedStability, 1e-9)
	require.Equal(t, []int{3}, mid.PropagatedDescendants)
	require.InDelta(t, 9.0, root.PropagatedStability, 1e-9)
	require.Equal(t, []int{3}, root.PropagatedDescendants)
}

func TestRunPrefersParentOnTieWithHigherOrEqualStability(t *testing.T) {
	root := clusternode.New(1, clusternode.NoParent, math.NaN(), 20)
	root.HasChildren = true
	mid := clusternode.New(2, 1, 10.0, 15)
	mid.HasChildren = true
	mid.Stability = 12.0
	mid.DeathLevel = 0

	leaf := clusternode.New(3, 2, 5.0, 8)
	leaf.Stability = 9.0
	leaf.DeathLevel = 1.0

	clusters := []*clusternode.Node{nil, root, mid, leaf}

	propagate.Run(clusters)

	require.InDelta(t, 12.0, root.PropagatedStability, 1e-9)
	require.Equal(t, []int{2}, root.PropagatedDescendants)
}
