package hdbscan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ojmakhura/hdbscan/clusternode"
	"github.com/ojmakhura/hdbscan/distance"
	"github.com/ojmakhura/hdbscan/hierarchy"
	"github.com/ojmakhura/hdbscan/mst"
	"github.com/ojmakhura/hdbscan/propagate"
	"github.com/ojmakhura/hdbscan/stats"
)

// RunResult bundles everything one run produces: the flat label vector,
// the core-distance vector it was assigned against, per-point outlier
// scores, the full cluster collection, the hierarchy map, a warning flag
// for degenerate (infinite-stability) input, and a RunID correlating
// this result with any debug dump written for it.
type RunResult struct {
	RunID             uuid.UUID
	Labels            []int
	CoreDistances     []float64
	OutlierScores     []stats.OutlierScore
	Clusters          []*clusternode.Node
	Hierarchy         map[int64]*hierarchy.Entry
	InfiniteStability bool
}

// Hdbscan is one configured clustering run. The zero value is not
// usable; construct with New.
type Hdbscan struct {
	config  *Config
	dataset *Dataset
	store   *distance.Store
	last    *RunResult
}

// New validates minPts and returns a ready-to-run Hdbscan instance.
// minPts must be >= 2: it is reused both as "k" for the core-distance
// neighbor and as the minimum valid cluster size.
func New(minPts int, opts ...Option) (*Hdbscan, error) {
	if minPts < 2 {
		return nil, invalidInput("minPoints must be at least 2")
	}

	cfg := newConfig(minPts, opts...)
	if cfg.distanceKind != Euclidean {
		return nil, invalidInput("unsupported distance kind")
	}

	return &Hdbscan{config: cfg}, nil
}

// Run clusters data, a flat buffer of rows*cols scalars read according
// to rowwise (see Dataset.Widen) and dtype (provenance only: data is
// already float64). A successful Run replaces any previously cached
// result; Rerun can then vary minPts without recomputing pairwise
// distances.
func (h *Hdbscan) Run(ctx context.Context, data []float64, rows, cols int, rowwise bool, dtype DType) (*RunResult, error) {
	if !dtype.valid() {
		return nil, invalidInput("unsupported dtype")
	}
	if rows <= 0 || cols <= 0 {
		return nil, invalidInput("rows and cols must be positive")
	}
	if len(data) != rows*cols {
		return nil, invalidInput("data length does not match rows*cols")
	}

	ds := &Dataset{Values: data, Rows: rows, Cols: cols, Rowwise: rowwise, Kind: dtype}
	points, n, d := ds.Widen()

	if n < 2 {
		return nil, invalidInput("fewer than 2 points after widening")
	}
	if h.config.minPoints > n {
		return nil, invalidInput("minPoints must not exceed the point count")
	}

	store, err := distance.Compute(ctx, points, n, d, h.config.minPoints)
	if err != nil {
		return nil, translateDistanceErr(err)
	}

	result, err := h.finish(ctx, store)
	if err != nil {
		return nil, err
	}

	h.dataset = ds
	h.store = store
	h.last = result

	return result, nil
}

// Rerun keeps the dataset and pairwise-distance matrix from the last Run
// and recomputes core distances for minPts onward: MST, hierarchy,
// propagation, and stats are all rebuilt. Calling Rerun before any Run
// returns ErrNoRun.
func (h *Hdbscan) Rerun(ctx context.Context, minPts int) (*RunResult, error) {
	if h.store == nil {
		return nil, ErrNoRun
	}
	if minPts < 2 {
		return nil, invalidInput("minPoints must be at least 2")
	}
	if minPts > h.store.N() {
		return nil, invalidInput("minPoints must not exceed the point count")
	}

	if err := h.store.RefreshCore(ctx, minPts); err != nil {
		return nil, translateDistanceErr(err)
	}
	h.config.minPoints = minPts

	result, err := h.finish(ctx, h.store)
	if err != nil {
		return nil, err
	}

	h.last = result

	return result, nil
}

// finish runs everything downstream of a ready distance.Store: MST
// construction, hierarchy construction, stability propagation, and the
// stats engine's outlier scoring. Shared by Run and Rerun so the rerun
// path is byte-for-byte the same pipeline a fresh Run would take from
// core-distance computation onward (spec.md §8's round-trip guarantee).
func (h *Hdbscan) finish(ctx context.Context, store *distance.Store) (*RunResult, error) {
	tree, err := mst.Build(ctx, store, h.config.selfEdges)
	if err != nil {
		return nil, translateMSTErr(err)
	}

	hres, err := hierarchy.Build(ctx, tree, h.config.minPoints, h.config.compactHierarchy)
	if err != nil {
		return nil, translateHierarchyErr(err)
	}

	infiniteStability := propagate.Run(hres.Clusters)

	entryAt := func(level int64) (propagate.HierarchyEntry, bool) {
		e, ok := hres.Hierarchy[level]
		return e, ok
	}
	labels := propagate.SelectProminent(hres.Clusters, entryAt, store.N())

	survivals := make([]stats.ClusterSurvival, 0, len(hres.Clusters))
	for _, c := range hres.Clusters {
		if c == nil {
			continue
		}
		survivals = append(survivals, stats.ClusterSurvival{
			Label:                           c.Label,
			PropagatedLowestChildDeathLevel: c.PropagatedLowestChildDeathLevel,
		})
	}

	outliers := stats.ComputeOutlierScores(survivals, store.CoreDistances(), hres.PointNoiseLevel, hres.PointLastCluster)
	outliers = stats.SortOutlierScores(outliers)

	coreDistances := make([]float64, store.N())
	copy(coreDistances, store.CoreDistances())

	return &RunResult{
		RunID:             uuid.New(),
		Labels:            labels,
		CoreDistances:     coreDistances,
		OutlierScores:     outliers,
		Clusters:          hres.Clusters,
		Hierarchy:         hres.Hierarchy,
		InfiniteStability: infiniteStability,
	}, nil
}

// Labels returns the flat per-point cluster assignment of the most
// recent run, or nil if none has completed.
func (h *Hdbscan) Labels() []int {
	if h.last == nil {
		return nil
	}

	return h.last.Labels
}

// CoreDistances returns the core-distance vector of the most recent
// run, or nil if none has completed.
func (h *Hdbscan) CoreDistances() []float64 {
	if h.last == nil {
		return nil
	}

	return h.last.CoreDistances
}

// OutlierScores returns the per-point GLOSH outlier scores of the most
// recent run, sorted ascending by (score, coreDistance, id), or nil if
// none has completed.
func (h *Hdbscan) OutlierScores() []stats.OutlierScore {
	if h.last == nil {
		return nil
	}

	return h.last.OutlierScores
}

// Clusters returns the full cluster collection of the most recent run
// (index 0 reserved nil, index 1 the root), or nil if none has
// completed.
func (h *Hdbscan) Clusters() []*clusternode.Node {
	if h.last == nil {
		return nil
	}

	return h.last.Clusters
}

// Hierarchy returns the level-id-keyed hierarchy map of the most recent
// run, or nil if none has completed.
func (h *Hdbscan) Hierarchy() map[int64]*hierarchy.Entry {
	if h.last == nil {
		return nil
	}

	return h.last.Hierarchy
}

func translateDistanceErr(err error) error {
	switch {
	case errors.Is(err, distance.ErrTooFewPoints),
		errors.Is(err, distance.ErrBadDimension),
		errors.Is(err, distance.ErrMinPointsTooLarge):
		return fmt.Errorf("hdbscan: %w: %w", ErrInvalidInput, err)
	default:
		return fmt.Errorf("hdbscan: %w: %w", ErrAllocationFailure, err)
	}
}

func translateMSTErr(err error) error {
	if errors.Is(err, mst.ErrEmptyStore) {
		return fmt.Errorf("hdbscan: %w: %w", ErrInvalidInput, err)
	}

	return fmt.Errorf("hdbscan: %w: %w", ErrAllocationFailure, err)
}

func translateHierarchyErr(err error) error {
	var negative *clusternode.NegativePointsError

	switch {
	case errors.Is(err, hierarchy.ErrNoPoints), errors.Is(err, hierarchy.ErrMinPointsTooSmall):
		return fmt.Errorf("hdbscan: %w: %w", ErrInvalidInput, err)
	case errors.As(err, &negative):
		return &LogicError{Label: negative.Label, Msg: negative.Error()}
	default:
		return err
	}
}
