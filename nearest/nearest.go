// Package nearest answers closest-vertex queries against a core.Graph.
//
// Nearest scans every vertex in insertion order, isolated vertices
// included, and keeps the first one at minimum straight-line distance from
// the query point. The scan is deliberately exhaustive: "nearest" means
// closest in the plane, never closest along the graph.
//
// Complexity:
//
//   - Time:  O(V), one distance evaluation per vertex.
//   - Space: O(V) for the vertex snapshot.
//
// Errors:
//
//   - ErrNilGraph   if g is nil.
//   - ErrEmptyGraph if the graph holds no vertices; an explicit sentinel
//     rather than a silent zero Point.
package nearest

import (
	"errors"

	"github.com/katalvlaran/geograph/core"
)

// Sentinel errors for nearest-vertex queries.
var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("nearest: graph is nil")

	// ErrEmptyGraph is returned when the graph contains no vertices.
	ErrEmptyGraph = errors.New("nearest: graph has no vertices")
)

// Nearest returns the graph vertex closest to query in straight-line
// distance. Ties break toward the earliest vertex in insertion order, so
// the result is deterministic. The query point itself need not belong to
// the graph; a query equal to an existing vertex returns that vertex at
// distance zero.
//
// Complexity: O(V).
func Nearest(g *core.Graph, query core.Point) (core.Point, error) {
	if g == nil {
		return core.Point{}, ErrNilGraph
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return core.Point{}, ErrEmptyGraph
	}

	// Seed with the first vertex, then keep strict improvements only, so the
	// first of any tied minimum wins.
	best := vertices[0]
	bestDist := query.DistanceTo(best)
	var d float64
	for _, v := range vertices[1:] {
		if d = query.DistanceTo(v); d < bestDist {
			best, bestDist = v, d
		}
	}

	return best, nil
}
