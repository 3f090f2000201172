package hdbscan

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// DumpHierarchyCSV writes one row per hierarchy level to w: the level's
// edge weight followed by the N per-point labels recorded at that
// level. Levels are written in ascending level-id order. This is a
// debug/inspection format only — spec.md §6 excludes it from
// correctness, and no field here is read back by Run/Rerun.
func (r *RunResult) DumpHierarchyCSV(w io.Writer) error {
	ids := make([]int64, 0, len(r.Hierarchy))
	for id := range r.Hierarchy {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	cw := csv.NewWriter(w)
	defer cw.Flush()

	for _, id := range ids {
		entry := r.Hierarchy[id]
		row := make([]string, 0, len(entry.Labels)+1)
		row = append(row, strconv.FormatFloat(entry.EdgeWeight, 'g', -1, 64))
		for _, label := range entry.Labels {
			row = append(row, strconv.Itoa(label))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("hdbscan: dump hierarchy csv: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// DumpVisualizationHeader writes the two-line header a visualization
// tool expects before the hierarchy CSV body: a format version ("1")
// and the number of levels.
func (r *RunResult) DumpVisualizationHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, "1\n%d\n", len(r.Hierarchy))
	if err != nil {
		return fmt.Errorf("hdbscan: dump visualization header: %w", err)
	}

	return nil
}
