package stats

import (
	"math"
	"sort"
)

// OutlierScore is one point's GLOSH outlier score, paired with the core
// distance and point index that break ties in the sort order accessors
// expose results in.
type OutlierScore struct {
	PointID      int
	Score        float64
	CoreDistance float64
}

// ClusterSurvival is the minimal per-cluster view ComputeOutlierScores
// needs from the caller's cluster collection: enough to reconstruct the
// GLOSH maximum-survival denominator without importing clusternode.
type ClusterSurvival struct {
	Label                           int
	PropagatedLowestChildDeathLevel float64
}

// ComputeOutlierScores implements the GLOSH formula: for a point p whose
// last owning cluster departed (became noise, or the cluster shrank past
// it) at pointNoiseLevel[p], the score is how much of that cluster's
// lowest-child-death level is left uncovered by the level p departed:
//
//	score(p) = 1 - c.PropagatedLowestChildDeathLevel / pointNoiseLevel[p]
//
// A cluster that never had a child die (PropagatedLowestChildDeathLevel
// still its uninitialized +Inf sentinel) scores every one of its points
// 0; a cluster whose PropagatedLowestChildDeathLevel is exactly 0 scores
// 1.0 for every point that departed it at a nonzero level. A point whose
// last cluster is the noise
// placeholder (label 0), never departed (noise level 0), or whose last
// cluster is unknown scores 0.
func ComputeOutlierScores(clusters []ClusterSurvival, coreDistances, pointNoiseLevel []float64, pointLastCluster []int) []OutlierScore {
	scores := make([]OutlierScore, len(pointNoiseLevel))

	byLabel := make(map[int]ClusterSurvival, len(clusters))
	for _, c := range clusters {
		byLabel[c.Label] = c
	}

	for p := range pointNoiseLevel {
		scores[p] = OutlierScore{PointID: p, CoreDistance: coreDistances[p]}

		lastLabel := pointLastCluster[p]
		level := pointNoiseLevel[p]
		if lastLabel == 0 || level == 0 {
			continue
		}

		c, ok := byLabel[lastLabel]
		if !ok {
			continue
		}

		if math.IsInf(c.PropagatedLowestChildDeathLevel, 1) {
			continue
		}

		scores[p].Score = 1 - c.PropagatedLowestChildDeathLevel/level
	}

	return scores
}

// SortOutlierScores returns scores ordered non-decreasing by
// (Score, CoreDistance, PointID), the lexicographic order spec.md's
// accessor contract requires.
func SortOutlierScores(scores []OutlierScore) []OutlierScore {
	out := make([]OutlierScore, len(scores))
	copy(out, scores)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if a.CoreDistance != b.CoreDistance {
			return a.CoreDistance < b.CoreDistance
		}
		return a.PointID < b.PointID
	})

	return out
}
