// Package connectivity decides reachability between points of a core.Graph
// and extracts connected components.
//
// Traversal is a depth-first walk over the adjacency mapping, implemented
// with an explicit stack and a visited set keyed by Point equality, so
// cyclic graphs terminate and deep graphs cannot overflow the call stack.
// The boolean answer is order-independent; depth-first is simply the
// engine's traversal of record.
//
// Complexity:
//
//   - Time:  O(V + E) over the component reachable from the start point.
//   - Space: O(V) for the stack and visited set.
//
// Errors:
//
//   - ErrNilGraph if g is nil.
package connectivity

import (
	"errors"

	"github.com/katalvlaran/geograph/core"
)

// ErrNilGraph is returned when a nil graph pointer is passed.
var ErrNilGraph = errors.New("connectivity: graph is nil")

// Connected reports whether p2 is reachable from p1 by traversing graph
// edges. Every point is connected to itself, including points with no
// recorded edges. A start point absent from the adjacency mapping is a
// valid argument with no outgoing neighbors, not an error.
//
// By undirected construction the relation is symmetric:
// Connected(g, a, b) == Connected(g, b, a).
//
// Complexity: O(V + E).
func Connected(g *core.Graph, p1, p2 core.Point) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}

	w := newWalker(g)
	found := false
	w.walk(p1, func(p core.Point) bool {
		if p == p2 {
			found = true
			return false // stop the walk
		}
		return true
	})

	return found, nil
}

// Component returns every point reachable from p, in depth-first discovery
// order, starting with p itself. A point with no recorded edges yields a
// single-element component.
//
// Complexity: O(V + E).
func Component(g *core.Graph, p core.Point) ([]core.Point, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	w := newWalker(g)
	var members []core.Point
	w.walk(p, func(q core.Point) bool {
		members = append(members, q)
		return true
	})

	return members, nil
}

// walker holds the frontier stack and visited set of one traversal.
type walker struct {
	graph   *core.Graph
	stack   []core.Point
	visited map[core.Point]bool
}

func newWalker(g *core.Graph) *walker {
	return &walker{
		graph:   g,
		visited: make(map[core.Point]bool),
	}
}

// walk runs depth-first from start, invoking visit on each newly popped
// point. Returning false from visit aborts the walk early.
func (w *walker) walk(start core.Point, visit func(core.Point) bool) {
	w.stack = append(w.stack, start)

	var cur core.Point
	for len(w.stack) > 0 {
		// Pop the top of the frontier.
		cur = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// Duplicate neighbor entries and cycles funnel through here.
		if w.visited[cur] {
			continue
		}
		w.visited[cur] = true

		if !visit(cur) {
			return
		}

		// Neighbors of an edge-less point are nil: the loop simply ends.
		for _, nb := range w.graph.Neighbors(cur) {
			if !w.visited[nb] {
				w.stack = append(w.stack, nb)
			}
		}
	}
}
