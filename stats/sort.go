package stats

// SortKey selects which field of a ClusterExtrema ranks the sort.
type SortKey int

const (
	// BySize ranks clusters by point count, descending.
	BySize SortKey = iota
	// ByCoreConfidence ranks clusters by core-distance confidence.
	ByCoreConfidence
	// ByIntraConfidence ranks clusters by intra-distance confidence.
	ByIntraConfidence
)

func keyOf(c ClusterExtrema, key SortKey) float64 {
	switch key {
	case ByCoreConfidence:
		return c.CoreConfidence
	case ByIntraConfidence:
		return c.IntraConfidence
	default:
		return float64(c.Size)
	}
}

// SortDescending returns a copy of clusters ordered by key, largest
// first, via quicksort with Lomuto partitioning — presentation-only;
// does not affect clustering correctness.
func SortDescending(clusters []ClusterExtrema, key SortKey) []ClusterExtrema {
	out := make([]ClusterExtrema, len(clusters))
	copy(out, clusters)

	quicksortDescending(out, key, 0, len(out)-1)

	return out
}

func quicksortDescending(data []ClusterExtrema, key SortKey, lo, hi int) {
	if lo >= hi {
		return
	}

	p := lomutoPartition(data, key, lo, hi)
	quicksortDescending(data, key, lo, p-1)
	quicksortDescending(data, key, p+1, hi)
}

// lomutoPartition partitions data[lo..hi] around the pivot data[hi],
// descending: everything greater than the pivot ends up to its left.
func lomutoPartition(data []ClusterExtrema, key SortKey, lo, hi int) int {
	pivot := keyOf(data[hi], key)
	i := lo

	for j := lo; j < hi; j++ {
		if keyOf(data[j], key) > pivot {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}

	data[i], data[hi] = data[hi], data[i]

	return i
}
