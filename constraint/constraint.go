package constraint

// Kind distinguishes the two supported constraint types.
type Kind int

const (
	// MustLink asserts that two points belong in the same cluster.
	MustLink Kind = iota + 1
	// CannotLink asserts that two points must not share a cluster.
	CannotLink
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case MustLink:
		return "must-link"
	case CannotLink:
		return "cannot-link"
	default:
		return "unknown"
	}
}

// Constraint pins a relationship between two point indices.
type Constraint struct {
	PointA int
	PointB int
	Kind   Kind
}

// New builds a Constraint between pointA and pointB of the given Kind.
func New(pointA, pointB int, kind Kind) Constraint {
	return Constraint{PointA: pointA, PointB: pointB, Kind: kind}
}

// CountSatisfied is the counting hook for numConstraintsSatisfied. It is
// a deliberate no-op: the constraint satisfaction engine was never
// completed upstream, and this package keeps only the interface, not an
// implementation. Nothing in the pipeline calls it, so every cluster's
// constraint count stays zero.
func CountSatisfied(_ []Constraint, _ []int) int {
	return 0
}
