package propagate

import "github.com/ojmakhura/hdbscan/clusternode"

// HierarchyEntry is the subset of hierarchy.Entry SelectProminent needs:
// the per-point label snapshot recorded at one level. Declared locally
// so this package does not need to import hierarchy for a single field.
type HierarchyEntry interface {
	LevelLabels() []int
}

// SelectProminent reads the root's propagatedDescendants — populated by
// Run — as the chosen flat partition, and resolves each selected
// cluster's member points from the hierarchy entry recorded one level
// after that cluster was born. Points never covered by a selected
// cluster keep label 0 (noise).
func SelectProminent(clusters []*clusternode.Node, entryAt func(level int64) (HierarchyEntry, bool), n int) []int {
	labels := make([]int, n)
	root := clusters[1]

	for _, label := range root.PropagatedDescendants {
		c := clusters[label]

		entry, ok := entryAt(c.Offset + 1)
		if !ok {
			continue
		}

		levelLabels := entry.LevelLabels()
		for i, l := range levelLabels {
			if l == c.Label {
				labels[i] = c.Label
			}
		}
	}

	return labels
}
