// Package geograph is an in-memory engine for weighted, undirected
// geographic graphs: vertices are latitude/longitude points, edge weights
// are straight-line distances derived from the coordinates themselves.
//
// 🚀 What is geograph?
//
//	A small, read-heavy library that brings together:
//		• Core primitives: an immutable Point-keyed adjacency graph built once from vertex/edge lists
//		• Nearest lookup: straight-line closest vertex to any query point
//		• Connectivity: reachability testing between points via iterative DFS
//		• Shortest paths: Dijkstra over geographic distance weights
//		• Loading: a plain-text .graph format reader feeding the core
//
// ✨ Why choose geograph?
//
//   - Build once, query forever – the graph never mutates after construction,
//     so concurrent readers need no locks
//   - One metric everywhere – the same planar-mile distance drives nearest
//     lookup, edge weights and route totals
//   - Explicit failures – every query surfaces a typed sentinel error, never
//     a silent nil
//
// Everything is organized under these packages:
//
//	core/         — Point, distance metric, the adjacency Graph and route sums
//	nearest/      — closest-vertex queries
//	connectivity/ — reachability and component extraction
//	dijkstra/     — shortest geographic routes
//	graphfile/    — .graph text-format loader
//	cmd/georouted — HTTP daemon exposing the queries as a JSON API
//
// Quick ASCII example:
//
//	    A(0,0)───B(0,1)───C(0,3)      D(5,5)
//
//	A three-vertex chain plus one isolated vertex: D is a nearest-lookup
//	candidate but can never be routed to, because it holds no edges.
//
//	go get github.com/katalvlaran/geograph
package geograph
