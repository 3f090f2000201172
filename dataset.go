package hdbscan

// DType names the scalar type a caller's buffer originated from before
// being widened to float64. It is provenance only: validated at Run time
// and kept on the Dataset — storage is always float64 regardless of
// DType.
type DType int

const (
	Float64 DType = iota
	Float32
	Int64
	Int32
	Int16
)

// String renders a DType's name.
func (k DType) String() string {
	switch k {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int64:
		return "int64"
	case Int32:
		return "int32"
	case Int16:
		return "int16"
	default:
		return "unknown"
	}
}

func (k DType) valid() bool {
	return k >= Float64 && k <= Int16
}

// Dataset wraps a raw flat buffer together with its declared shape and
// the rowwise/columnwise reading convention. Values is always float64:
// any narrower DType has already been widened by the caller before
// reaching Run; DType is carried through only as provenance.
type Dataset struct {
	Values  []float64
	Rows    int
	Cols    int
	Rowwise bool
	Kind    DType
}

// Widen resolves a Dataset into the (points, n, d) triple DistanceStore
// consumes.
//
// When Rowwise is true, each of Rows rows is one point of dimension
// Cols: n = Rows, d = Cols — the ordinary case.
//
// When Rowwise is false, the historical atavism from the original
// implementation is preserved literally rather than "fixed": every
// scalar in the buffer becomes its own 1-dimensional point, so n =
// Rows*Cols and d = 1. A caller who sets Rowwise = false is very
// unlikely to get the clustering they expect, but changing this
// behavior would silently diverge from the source it was ported from
// (spec.md §9 open question) — it is preserved and documented, not
// corrected.
func (ds *Dataset) Widen() (points []float64, n, d int) {
	if ds.Rowwise {
		return ds.Values, ds.Rows, ds.Cols
	}

	return ds.Values, ds.Rows * ds.Cols, 1
}
