package stats

import (
	"math"
	"sort"
)

// distanceStore is the subset of distance.Store Compute needs. Declared
// locally so this package does not depend on distance's concrete type.
type distanceStore interface {
	Get(i, j int) float64
	CoreDistance(i int) float64
}

// ClusterExtrema is one cluster's core- and intra-distance extrema, the
// ratios derived from them, and the confidence each ratio earns once the
// full report's moments are known.
type ClusterExtrema struct {
	Label              int
	Size               int
	MinCore, MaxCore   float64
	MinIntra, MaxIntra float64
	CoreRatio          float64
	IntraRatio         float64
	CoreConfidence     float64
	IntraConfidence    float64
}

// Report is the full statistical picture of a completed clustering:
// every cluster's extrema/ratios/confidences, the aggregate moments of
// the two ratio vectors, and the combined validity score.
type Report struct {
	Clusters []ClusterExtrema
	Core     Moments
	Intra    Moments
	Validity int
}

// Compute builds a Report from a label -> member-point-indices mapping.
// Labels are processed in ascending order for determinism; the moments
// themselves are order-independent (plain sums).
func Compute(store distanceStore, clusters map[int][]int) (*Report, error) {
	if len(clusters) == 0 {
		return nil, ErrNoClusters
	}

	labels := make([]int, 0, len(clusters))
	for label := range clusters {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	extrema := make([]ClusterExtrema, len(labels))
	coreRatios := make([]float64, len(labels))
	intraRatios := make([]float64, len(labels))

	for i, label := range labels {
		points := clusters[label]
		minCore, maxCore := coreExtrema(store, points)
		minIntra, maxIntra := intraExtrema(store, points)

		coreRatio := maxCore / minCore
		intraRatio := maxIntra / minIntra

		extrema[i] = ClusterExtrema{
			Label:      label,
			Size:       len(points),
			MinCore:    minCore,
			MaxCore:    maxCore,
			MinIntra:   minIntra,
			MaxIntra:   maxIntra,
			CoreRatio:  coreRatio,
			IntraRatio: intraRatio,
		}
		coreRatios[i] = coreRatio
		intraRatios[i] = intraRatio
	}

	core := computeMoments(coreRatios)
	intra := computeMoments(intraRatios)

	for i := range extrema {
		extrema[i].CoreConfidence = ((core.Max - extrema[i].CoreRatio) / core.Max) * 100
		extrema[i].IntraConfidence = ((intra.Max - extrema[i].IntraRatio) / intra.Max) * 100
	}

	return &Report{
		Clusters: extrema,
		Core:     core,
		Intra:    intra,
		Validity: validity(intra) + validity(core),
	}, nil
}

// coreExtrema returns the min (excluding zero) and max core distance
// among points, seeded from the first point the way the reference
// implementation's per-cluster accumulator is seeded; a zero seed is
// replaced by the first nonzero core distance.
func coreExtrema(store distanceStore, points []int) (min, max float64) {
	if len(points) == 0 {
		return 0, 0
	}

	min = store.CoreDistance(points[0])
	max = min

	for _, p := range points[1:] {
		c := store.CoreDistance(p)
		if c != 0 && (min == 0 || c < min) {
			min = c
		}
		if c > max {
			max = c
		}
	}

	return min, max
}

// intraExtrema returns the min (excluding zero) and max pairwise
// distance among every unordered pair of points in the cluster.
func intraExtrema(store distanceStore, points []int) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)

	for j := 0; j < len(points); j++ {
		for k := j + 1; k < len(points); k++ {
			d := store.Get(points[j], points[k])
			if d != 0 && d < min {
				min = d
			}
			if d > max {
				max = d
			}
		}
	}

	return min, max
}
