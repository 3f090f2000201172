package clusternode_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ojmakhura/hdbscan/clusternode"
)

func TestNewSeedsPropagationSentinel(t *testing.T) {
	n := clusternode.New(2, 1, 0.5, 10)
	require.Equal(t, 2, n.Label)
	require.Equal(t, 1, n.Parent)
	require.Equal(t, 10, n.NumPoints)
	require.True(t, math.IsInf(n.PropagatedLowestChildDeathLevel, 1))
	require.Zero(t, n.DeathLevel)
}

func TestDetachAccumulatesStabilityAndDeath(t *testing.T) {
	n := clusternode.New(2, 1, 1.0, 5)
	require.NoError(t, n.Detach(3, 0.5))
	require.Equal(t, 2, n.NumPoints)
	require.InDelta(t, 3*(1/0.5-1/1.0), n.Stability, 1e-9)
	require.Zero(t, n.DeathLevel)

	require.NoError(t, n.Detach(2, 0.25))
	require.Equal(t, 0, n.NumPoints)
	require.Equal(t, 0.25, n.DeathLevel)
}

func TestDetachBeyondNumPointsIsLogicError(t *testing.T) {
	n := clusternode.New(2, 1, 1.0, 1)
	err := n.Detach(2, 0.5)
	require.ErrorIs(t, err, clusternode.ErrNegativePoints)
}

func TestVirtualChildLifecycle(t *testing.T) {
	n := clusternode.New(2, 1, 1.0, 5)
	n.AddToVirtualChild([]int{3, 1, 3})
	require.Equal(t, []int{1, 3}, n.VirtualChildCluster.Values())

	n.ReleaseVirtualChild()
	require.Equal(t, 0, n.VirtualChildCluster.Len())
}

func TestIsLeaf(t *testing.T) {
	n := clusternode.New(1, clusternode.NoParent, math.NaN(), 10)
	require.True(t, n.IsLeaf())
	n.HasChildren = true
	require.False(t, n.IsLeaf())
}
