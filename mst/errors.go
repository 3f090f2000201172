package mst

import "errors"

// ErrEmptyStore indicates the distance store has fewer than 2 points, so
// no spanning tree can be grown.
var ErrEmptyStore = errors.New("mst: distance store must have at least 2 points")

// ErrVertexOutOfRange indicates RemoveEdge was called with a vertex index
// outside [0, N).
var ErrVertexOutOfRange = errors.New("mst: vertex index out of range")
