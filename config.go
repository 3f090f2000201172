package hdbscan

// Config holds the options resolved once at New and reused by every
// Run/Rerun: whether the MST carries self edges (needed to recover
// per-point noise levels for outlier scoring), whether the hierarchy
// dump omits insignificant levels, and the distance metric. Only
// Euclidean is specified (spec.md's Non-goals).
type Config struct {
	minPoints        int
	selfEdges        bool
	compactHierarchy bool
	distanceKind     DistanceKind
}

// DistanceKind selects the pairwise metric. Euclidean is the only
// specified value; the field exists so a future metric can be added
// without changing New's signature.
type DistanceKind int

const (
	Euclidean DistanceKind = iota
)

// Option customizes a Config before a Hdbscan instance is built.
type Option func(*Config)

// WithSelfEdges toggles whether the MST is augmented with a self edge
// (v, v, core(v)) per vertex, default true. Disabling it loses the
// ability to recover per-point noise levels (and therefore outlier
// scores), but saves N edges of bookkeeping for callers that only need
// the flat partition.
func WithSelfEdges(enabled bool) Option {
	return func(c *Config) {
		c.selfEdges = enabled
	}
}

// WithCompactHierarchy toggles whether hierarchy levels that introduce
// no new cluster are omitted from the result, default false.
func WithCompactHierarchy(enabled bool) Option {
	return func(c *Config) {
		c.compactHierarchy = enabled
	}
}

// WithDistanceKind selects the pairwise metric. Only Euclidean is
// implemented; any other value makes New return ErrInvalidInput.
func WithDistanceKind(kind DistanceKind) Option {
	return func(c *Config) {
		c.distanceKind = kind
	}
}

func newConfig(minPoints int, opts ...Option) *Config {
	cfg := &Config{
		minPoints:        minPoints,
		selfEdges:        true,
		compactHierarchy: false,
		distanceKind:     Euclidean,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
