package hierarchy

import "github.com/ojmakhura/hdbscan/clusternode"

// Entry is a snapshot of every point's cluster label at one significant
// edge weight — one row of the debug hierarchy dump, and the lookup
// table ProminentSelector uses to resolve a selected cluster's points.
type Entry struct {
	EdgeWeight float64
	Labels     []int
}

// LevelLabels satisfies propagate.HierarchyEntry.
func (e *Entry) LevelLabels() []int {
	return e.Labels
}

// Result is everything Builder produces: the flat cluster collection
// (index 0 reserved nil for noise, index 1 the root), the hierarchy
// entries keyed by level id, and the per-point noise bookkeeping that
// StatsEngine's outlier scoring consumes.
type Result struct {
	Clusters         []*clusternode.Node
	Hierarchy        map[int64]*Entry
	PointNoiseLevel  []float64
	PointLastCluster []int
}
