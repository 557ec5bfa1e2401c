// Package core defines the central Point and Graph types of geograph,
// plus the distance metric shared by every query package.
//
// Overview:
//
//   - Point is an immutable latitude/longitude value. Two Points are equal
//     iff both coordinates are bit-for-bit equal, so a Point can serve
//     directly as a map key with equality and hashing consistent by
//     language definition.
//   - Graph owns an insertion-ordered vertex list and a symmetric adjacency
//     mapping keyed by Point value. It is built exactly once by NewGraph and
//     never mutates afterwards; all methods are pure reads, safe for
//     concurrent use once construction has completed.
//   - RouteDistance sums the pairwise distances along any ordered point
//     sequence, graph membership not required.
//
// Construction rule (value-keyed adjacency):
//
//	Each edge (u, v) references vertices by list position, but adjacency is
//	recorded by Point value. Two distinct input records with equal
//	coordinates therefore merge under a single adjacency key, combining
//	their neighbor lists. This is a deliberate, tested contract of the
//	engine, not an accident. Duplicate edges stack duplicate neighbor
//	entries, and self-loops are permitted.
//
// Distance metric:
//
//	DistanceTo uses the equirectangular planar approximation scaled to
//	miles: d = R·√(Δφ² + (cos((φ₁+φ₂)/2)·Δλ)²), R = 3963.2 mi. It is not a
//	great-circle formula; it is the single metric used for nearest lookup,
//	Dijkstra edge weights, and route totals alike.
//
// Complexity:
//
//   - NewGraph: O(V + E) time, O(V + E) space.
//   - Neighbors / Routable: O(1) map lookup plus O(deg) copy.
//   - RouteDistance: O(n) over the sequence length.
//
// Errors:
//
//	ErrEdgeIndexOutOfRange - an edge references a vertex position outside
//	the supplied vertex list; a caller contract violation surfaced
//	immediately at construction.
package core
