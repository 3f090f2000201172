package distance_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ojmakhura/hdbscan/distance"
)

func TestComputeRejectsTooFewPoints(t *testing.T) {
	_, err := distance.Compute(context.Background(), []float64{1, 2}, 1, 2, 1)
	require.ErrorIs(t, err, distance.ErrTooFewPoints)
}

func TestComputeRejectsMinPtsTooLarge(t *testing.T) {
	data := []float64{0, 0, 1, 1, 2, 2}
	_, err := distance.Compute(context.Background(), data, 3, 2, 4)
	require.ErrorIs(t, err, distance.ErrMinPointsTooLarge)
}

func TestComputeAllowsMinPtsEqualToPointCount(t *testing.T) {
	data := []float64{0, 0, 1, 1, 2, 2}
	s, err := distance.Compute(context.Background(), data, 3, 2, 3)
	require.NoError(t, err)
	require.Len(t, s.CoreDistances(), 3)
}

func TestComputeSymmetricAndZeroDiagonal(t *testing.T) {
	// Square: (0,0), (3,0), (3,4), (0,4)
	data := []float64{0, 0, 3, 0, 3, 4, 0, 4}
	s, err := distance.Compute(context.Background(), data, 4, 2, 2)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.Zero(t, s.Get(i, i))
		for j := 0; j < 4; j++ {
			require.InDelta(t, s.Get(i, j), s.Get(j, i), 1e-9)
		}
	}
	require.InDelta(t, 3.0, s.Get(0, 1), 1e-9)
	require.InDelta(t, 5.0, s.Get(0, 2), 1e-9)
	require.InDelta(t, 4.0, s.Get(0, 3), 1e-9)
}

func TestCoreDistanceIsKthNeighborExcludingSelf(t *testing.T) {
	// Points on a line: 0, 1, 2, 10. minPts=2 -> core distance = nearest neighbor distance.
	data := []float64{0, 1, 2, 10}
	s, err := distance.Compute(context.Background(), data, 4, 1, 2)
	require.NoError(t, err)

	require.InDelta(t, 1.0, s.CoreDistance(0), 1e-9) // nearest to 0 is 1
	require.InDelta(t, 1.0, s.CoreDistance(1), 1e-9) // nearest to 1 is 0 or 2
	require.InDelta(t, 1.0, s.CoreDistance(2), 1e-9) // nearest to 2 is 1
	require.InDelta(t, 8.0, s.CoreDistance(3), 1e-9) // nearest to 10 is 2
}

func TestRefreshCoreLeavesDistancesUnchanged(t *testing.T) {
	data := []float64{0, 1, 2, 10, 20}
	s, err := distance.Compute(context.Background(), data, 5, 1, 2)
	require.NoError(t, err)
	before := s.Get(0, 4)

	err = s.RefreshCore(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, before, s.Get(0, 4))
	require.NotZero(t, s.CoreDistance(0))
}

func TestAllIdenticalPointsYieldZeroCoreDistances(t *testing.T) {
	data := []float64{1, 1, 1, 1, 1, 1}
	s, err := distance.Compute(context.Background(), data, 3, 2, 2)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.Zero(t, s.CoreDistance(i))
	}
}

func TestOffsetIsSymmetricAcrossLargerMatrix(t *testing.T) {
	n := 6
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i*i) * 0.37
	}
	s, err := distance.Compute(context.Background(), data, n, 1, 2)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := s.Get(i, j)
			require.False(t, math.IsNaN(d))
			require.GreaterOrEqual(t, d, 0.0)
		}
	}
}
