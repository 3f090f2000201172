package hierarchy

import (
	"context"
	"math"

	"github.com/ojmakhura/hdbscan/clusternode"
	"github.com/ojmakhura/hdbscan/mst"
	"github.com/ojmakhura/hdbscan/ordset"
)

// Build walks tree's edges from heaviest to lightest, removing each
// batch of equal-weight edges and exploring what remains of the graph to
// discover splits, shrinks, and noise. minPoints is both the minimum
// valid cluster size and reused, unmodified, from the run configuration.
// When compactHierarchy is true, levels that introduce no new cluster
// and follow another insignificant level are omitted from the result.
//
// Build mutates tree's adjacency lists in place via RemoveEdge; the
// caller must not reuse tree afterward for anything but inspecting the
// (now fully disconnected) Edges() record.
// Complexity: O(E log E) for the initial sort plus O(E * alpha) for the
// BFS exploration across all batches, where alpha is the average
// component-touch cost; strictly sequential (spec.md forbids parallel
// fan-out here, since mutations to the cluster tree and label arrays are
// not associative).
func Build(ctx context.Context, tree *mst.MST, minPoints int, compactHierarchy bool) (*Result, error) {
	n := tree.VertexCount()
	if n == 0 {
		return nil, ErrNoPoints
	}
	if minPoints < 1 {
		return nil, ErrMinPointsTooSmall
	}

	currentLabels := make([]int, n)
	previousLabels := make([]int, n)
	for i := range currentLabels {
		currentLabels[i] = 1
		previousLabels[i] = 1
	}

	clusters := make([]*clusternode.Node, 2, 8)
	clusters[1] = clusternode.New(1, clusternode.NoParent, math.NaN(), n)
	nextLabel := 2

	pointNoiseLevel := make([]float64, n)
	pointLastCluster := make([]int, n)

	hierarchyMap := make(map[int64]*Entry)
	var hierarchyLevel int64 = 1
	nextLevelSignificant := true

	edges := tree.SortedAscending()
	descend(edges)

	idx := 0
	total := len(edges)

	for idx < total {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		w := edges[idx].Weight

		var affectedVertices []int
		var affectedLabels []int

		for idx < total && edges[idx].Weight == w {
			e := edges[idx]
			idx++
			if err := tree.RemoveEdge(e.A, e.B); err != nil {
				return nil, err
			}
			if currentLabels[e.A] == 0 {
				continue
			}
			affectedVertices = append(affectedVertices, e.A, e.B)
			affectedLabels = append(affectedLabels, currentLabels[e.A])
		}

		if len(affectedLabels) == 0 {
			continue
		}

		var newClusters []*clusternode.Node

		for _, label := range uniqueInOrder(affectedLabels) {
			var examinedMembers []int
			var kept []int
			for _, v := range affectedVertices {
				if currentLabels[v] == label {
					examinedMembers = append(examinedMembers, v)
				} else {
					kept = append(kept, v)
				}
			}
			affectedVertices = kept

			examined := ordset.NewIntSet(examinedMembers...)
			numChildClusters := 0
			firstChild := ordset.NewIntSet()
			var firstChildStack []int

			for examined.Len() > 0 {
				root, _ := examined.PopLast()
				constructing := ordset.NewIntSet(root)
				stack := []int{root}
				anyEdges := false
				incremented := false

				for len(stack) > 0 {
					v := stack[len(stack)-1]
					stack = stack[:len(stack)-1]

					for _, nb := range tree.Neighbors(v) {
						anyEdges = true
						if constructing.Insert(nb) {
							stack = append(stack, nb)
							examined.Remove(nb)
						}
					}

					if !incremented && constructing.Len() >= minPoints && anyEdges {
						incremented = true
						numChildClusters++
						if firstChild.Len() == 0 {
							firstChild.InsertAll(constructing.Values())
							firstChildStack = append([]int(nil), stack...)
							break
						}
					}
				}

				switch {
				case numChildClusters >= 2 && constructing.Len() >= minPoints && anyEdges:
					marker := firstChild.Values()[0]
					if constructing.Contains(marker) {
						numChildClusters--
						break
					}

					parent := clusters[label]
					child := clusternode.New(nextLabel, label, w, constructing.Len())
					parent.HasChildren = true
					if err := parent.Detach(constructing.Len(), w); err != nil {
						return nil, err
					}
					for _, p := range constructing.Values() {
						currentLabels[p] = nextLabel
					}
					clusters = append(clusters, child)
					newClusters = append(newClusters, child)
					nextLabel++

				case constructing.Len() < minPoints || !anyEdges:
					parent := clusters[label]
					if err := parent.Detach(constructing.Len(), w); err != nil {
						return nil, err
					}
					parent.AddToVirtualChild(constructing.Values())
					for _, p := range constructing.Values() {
						currentLabels[p] = 0
						pointNoiseLevel[p] = w
						pointLastCluster[p] = label
					}
				}
			}

			if numChildClusters >= 2 && firstChild.Len() > 0 && currentLabels[firstChild.Values()[0]] == label {
				stack := firstChildStack
				for len(stack) > 0 {
					v := stack[len(stack)-1]
					stack = stack[:len(stack)-1]

					for _, nb := range tree.Neighbors(v) {
						if firstChild.Insert(nb) {
							stack = append(stack, nb)
						}
					}
				}

				parent := clusters[label]
				child := clusternode.New(nextLabel, label, w, firstChild.Len())
				parent.HasChildren = true
				if err := parent.Detach(firstChild.Len(), w); err != nil {
					return nil, err
				}
				for _, p := range firstChild.Values() {
					currentLabels[p] = nextLabel
				}
				clusters = append(clusters, child)
				newClusters = append(newClusters, child)
				nextLabel++
			}
		}

		if !compactHierarchy || nextLevelSignificant || len(newClusters) > 0 {
			snapshot := make([]int, n)
			copy(snapshot, previousLabels)
			hierarchyMap[hierarchyLevel] = &Entry{EdgeWeight: w, Labels: snapshot}
			hierarchyLevel++

			for _, c := range newClusters {
				c.Offset = hierarchyLevel - 1
			}
		}

		copy(previousLabels, currentLabels)
		nextLevelSignificant = len(newClusters) > 0
	}

	hierarchyMap[0] = &Entry{EdgeWeight: 0, Labels: make([]int, n)}

	return &Result{
		Clusters:         clusters,
		Hierarchy:        hierarchyMap,
		PointNoiseLevel:  pointNoiseLevel,
		PointLastCluster: pointLastCluster,
	}, nil
}

// descend reverses an ascending-sorted edge slice in place.
func descend(edges []mst.Edge) {
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
}

// uniqueInOrder returns labels with duplicates removed, first occurrence
// order preserved — processing order among affected labels is immaterial
// to correctness (spec.md §4.D.2), so any stable order will do.
func uniqueInOrder(labels []int) []int {
	seen := make(map[int]bool, len(labels))
	out := make([]int, 0, len(labels))
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}

	return out
}
