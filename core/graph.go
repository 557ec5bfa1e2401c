package core

import "fmt"

// NewGraph builds a Graph from a vertex list and an edge list.
//
// vertices is kept in input order, duplicate coordinate values included:
// each record is a distinct vertex-list entry even when geographically
// coincident. edges reference vertices by 0-based position; for each edge
// (u, v) the builder appends vertices[v] to u's neighbor list and
// vertices[u] to v's, by Point value. Because adjacency is keyed by value,
// equal-coordinate records share one adjacency key and their neighbor lists
// merge. Duplicate edges append duplicate neighbor entries, and self-loops
// (u == v) are legal.
//
// An edge index outside the vertex list returns ErrEdgeIndexOutOfRange
// wrapped with the offending edge.
//
// An empty vertex list yields an empty, queryable Graph.
//
// Complexity: O(V + E).
func NewGraph(vertices []Point, edges [][2]int) (*Graph, error) {
	g := &Graph{
		vertices:  make([]Point, len(vertices)),
		edges:     make([][2]Point, 0, len(edges)),
		adjacency: make(map[Point][]Point, len(vertices)),
	}
	copy(g.vertices, vertices)

	var u, v int
	for i, e := range edges {
		u, v = e[0], e[1]
		if u < 0 || u >= len(vertices) || v < 0 || v >= len(vertices) {
			return nil, fmt.Errorf("%w: edge %d references (%d,%d) with %d vertices",
				ErrEdgeIndexOutOfRange, i, u, v, len(vertices))
		}

		pu, pv := vertices[u], vertices[v]
		// Undirected: record both directions. A self-loop lands twice on the
		// same key, matching one append per direction.
		g.adjacency[pu] = append(g.adjacency[pu], pv)
		g.adjacency[pv] = append(g.adjacency[pv], pu)
		g.edges = append(g.edges, [2]Point{pu, pv})
	}

	return g, nil
}

// Vertices returns a copy of the vertex list in input order, duplicates
// preserved. Mutating the returned slice does not affect the Graph.
func (g *Graph) Vertices() []Point {
	out := make([]Point, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns a copy of the input edge list with indices resolved to
// Point pairs, in input order.
func (g *Graph) Edges() [][2]Point {
	out := make([][2]Point, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns a copy of p's neighbor list, or nil when p holds no
// recorded edges. Duplicate entries reflect duplicate input edges.
func (g *Graph) Neighbors(p Point) []Point {
	nbs, ok := g.adjacency[p]
	if !ok {
		return nil
	}

	out := make([]Point, len(nbs))
	copy(out, nbs)

	return out
}

// Routable reports whether p appears as an adjacency key, i.e. whether at
// least one edge touches p. A vertex that appears in the vertex list but
// holds no edges is NOT routable, even though it remains a valid nearest
// and connectivity argument.
func (g *Graph) Routable(p Point) bool {
	_, ok := g.adjacency[p]

	return ok
}

// VertexCount returns the number of vertex-list entries, duplicates
// included.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of input edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
