package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ojmakhura/hdbscan/stats"
)

func TestComputeOutlierScoresZeroForUndeparted(t *testing.T) {
	scores := stats.ComputeOutlierScores(
		[]stats.ClusterSurvival{{Label: 1, PropagatedLowestChildDeathLevel: 2}},
		[]float64{0.5, 0.5},
		[]float64{0, 0},
		[]int{0, 0},
	)

	require.Len(t, scores, 2)
	require.Zero(t, scores[0].Score)
	require.Zero(t, scores[1].Score)
}

func TestComputeOutlierScoresMatchesGLOSHFormula(t *testing.T) {
	scores := stats.ComputeOutlierScores(
		[]stats.ClusterSurvival{{Label: 1, PropagatedLowestChildDeathLevel: 2}},
		[]float64{0.5},
		[]float64{4},
		[]int{1},
	)

	want := 1 - 2.0/4.0

	require.Len(t, scores, 1)
	require.InDelta(t, want, scores[0].Score, 1e-9)
	require.Equal(t, 0.5, scores[0].CoreDistance)
}

// TestComputeOutlierScoresHandlesZeroDeathLevelWithoutNaN covers the
// case a reciprocal formulation mishandles: a cluster whose
// PropagatedLowestChildDeathLevel is exactly 0 (it died entirely at a
// zero-weight edge, routine with duplicate/near-duplicate points). The
// point that departed it scores a clean 1.0, never NaN or +Inf.
func TestComputeOutlierScoresHandlesZeroDeathLevelWithoutNaN(t *testing.T) {
	scores := stats.ComputeOutlierScores(
		[]stats.ClusterSurvival{{Label: 1, PropagatedLowestChildDeathLevel: 0}},
		[]float64{0.5},
		[]float64{3},
		[]int{1},
	)

	require.Len(t, scores, 1)
	require.Equal(t, 1.0, scores[0].Score)
	require.False(t, math.IsNaN(scores[0].Score))
}

func TestSortOutlierScoresOrdersByScoreThenCoreThenID(t *testing.T) {
	in := []stats.OutlierScore{
		{PointID: 2, Score: 0.5, CoreDistance: 1},
		{PointID: 0, Score: 0.5, CoreDistance: 0.1},
		{PointID: 1, Score: 0.1, CoreDistance: 9},
	}

	out := stats.SortOutlierScores(in)
	require.Equal(t, []int{1, 0, 2}, []int{out[0].PointID, out[1].PointID, out[2].PointID})
}
