// Package stats computes the descriptive statistics used to judge a
// completed clustering's quality: per-cluster core- and intra-distance
// extrema, the resulting ratio vectors' moments (mean, variance,
// skewness, excess kurtosis) aggregated across clusters, a per-cluster
// confidence derived from those moments, and a single validity score
// summarizing both dimensions. None of this feeds back into the
// clustering itself — it is read-only, presentation-facing output.
package stats
