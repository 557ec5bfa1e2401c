// Package dijkstra computes shortest geographic routes on a core.Graph
// using Dijkstra's algorithm with straight-line mile distances as edge
// weights.
//
// Overview:
//
//   - Route walks the adjacency mapping from a start point, always settling
//     the closest unsettled point next, and stops early the moment the end
//     point settles.
//   - The graph stores no explicit weights; every edge costs exactly the
//     planar-mile distance between its endpoints (core.Point.DistanceTo),
//     so route totals and adjacency costs can never disagree.
//   - The priority queue is a container/heap min-heap with lazy decrease-key:
//     relaxation pushes duplicates, and a settled set discards stale entries
//     when popped.
//
// Routing policy (faithful to the engine's contract):
//
//   - A vertex with zero recorded edges never appears as an adjacency key
//     and is therefore always unroutable (ErrUnroutablePoint).
//   - A self-route (start == end) is rejected with ErrSameEndpoints rather
//     than answered with a trivial single-point path.
//   - Distinct, routable endpoints in different components return
//     ErrNoRoute.
//   - Every failure satisfies errors.Is(err, ErrNoRoute), so callers that
//     do not care about the cause can test one sentinel.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each point is settled at most once: V extractions.
//   - Each relaxation may push one heap entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E.
//   - Space: O(V + E) for the distance/predecessor maps and the heap under
//     lazy decrease-key.
//
// Errors (sentinel):
//
//   - ErrNilGraph         if g is nil.
//   - ErrNoRoute          if no path exists; umbrella for all causes below.
//   - ErrSameEndpoints    if start == end (wraps ErrNoRoute).
//   - ErrUnroutablePoint  if an endpoint holds no edges (wraps ErrNoRoute).
//   - ErrBadMaxDistance   (via panic) if WithMaxDistance receives a
//     non-positive cap.
//
// API reference:
//
//	func Route(
//	    g *core.Graph,
//	    start, end core.Point,
//	    opts ...Option,
//	) (path []core.Point, miles float64, err error)
package dijkstra
