package stats

import "errors"

// ErrNoClusters indicates Compute was called with an empty cluster
// mapping — there is no ratio vector to aggregate moments over.
var ErrNoClusters = errors.New("stats: no clusters to analyze")
