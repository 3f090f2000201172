package distance

import "errors"

// ErrTooFewPoints indicates N < 2: there is no pairwise distance to compute.
var ErrTooFewPoints = errors.New("distance: need at least 2 points")

// ErrMinPointsTooLarge indicates minPts > N: not even the farthest point
// has enough neighbors to produce a core distance. minPts == N is valid
// (it indexes the farthest neighbor, the last slot of the sorted row).
var ErrMinPointsTooLarge = errors.New("distance: minPts must not exceed N")

// ErrBadDimension indicates a non-positive point dimensionality.
var ErrBadDimension = errors.New("distance: dimension must be positive")
