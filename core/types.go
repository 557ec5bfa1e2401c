// This file declares Point, Graph, and the sentinel errors of package core.
package core

import "errors"

// Sentinel errors for core graph construction.
var (
	// ErrEdgeIndexOutOfRange indicates an edge referenced a vertex index
	// outside the bounds of the supplied vertex list.
	ErrEdgeIndexOutOfRange = errors.New("core: edge vertex index out of range")
)

// Point represents an immutable geographic coordinate.
//
// Lat and Lon are degrees. Point is a comparable value type: two Points are
// equal iff both coordinates compare equal as float64, which makes Point
// usable directly as a map key. Construct Points as plain literals; there is
// no hidden state to initialize.
type Point struct {
	// Lat is the latitude in degrees.
	Lat float64

	// Lon is the longitude in degrees.
	Lon float64
}

// Graph is the in-memory geographic graph.
//
// It holds the vertex list in input order (duplicates preserved) and a
// symmetric adjacency mapping keyed by Point value. A Graph is immutable
// once NewGraph returns: every method is a pure read, so a fully built
// Graph may be shared across goroutines without locking. The owning context
// must ensure construction happens-before any concurrent reads.
type Graph struct {
	// vertices is the input vertex sequence, insertion order preserved.
	vertices []Point

	// edges records each input edge as a resolved Point pair, in input order.
	edges [][2]Point

	// adjacency maps each edge endpoint to its neighbor list. A vertex with
	// no edges never appears as a key.
	adjacency map[Point][]Point
}
