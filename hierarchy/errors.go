package hierarchy

import "errors"

// ErrNoPoints indicates the MST passed to Build has no vertices.
var ErrNoPoints = errors.New("hierarchy: tree has no vertices")

// ErrMinPointsTooSmall indicates minPoints < 1, which would make every
// non-empty component a valid cluster and defeat the noise/split logic.
var ErrMinPointsTooSmall = errors.New("hierarchy: minPoints must be at least 1")
