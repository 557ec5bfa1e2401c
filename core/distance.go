package core

import "math"

// earthRadiusMiles is the mean Earth radius used by the planar metric.
const earthRadiusMiles = 3963.2

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// DistanceTo returns the straight-line distance from p to q in miles,
// using the equirectangular planar approximation:
//
//	d = R·√(Δφ² + (cos((φ₁+φ₂)/2)·Δλ)²)
//
// with latitudes and longitudes in radians and R = 3963.2 miles. The
// approximation treats the neighborhood of the two points as flat; it is
// deliberately not a great-circle formula. The result is non-negative and
// symmetric: p.DistanceTo(q) == q.DistanceTo(p).
//
// Complexity: O(1).
func (p Point) DistanceTo(q Point) float64 {
	lat1 := p.Lat * degToRad
	lat2 := q.Lat * degToRad

	// North-south separation in radians.
	dLat := lat2 - lat1
	// East-west separation, shrunk by the cosine of the mean latitude.
	dLon := (q.Lon - p.Lon) * degToRad * math.Cos((lat1+lat2)/2)

	return earthRadiusMiles * math.Sqrt(dLat*dLat+dLon*dLon)
}

// RouteDistance sums the pairwise distances along route, in miles:
// DistanceTo(route[0], route[1]) + DistanceTo(route[1], route[2]) + ...
//
// The sequence need not correspond to graph edges; RouteDistance is a pure
// geometric accumulator usable on any ordered point list. Sequences with
// fewer than two elements sum to zero.
//
// Complexity: O(n) for n points.
func RouteDistance(route []Point) float64 {
	var total float64
	for i := 1; i < len(route); i++ {
		total += route[i-1].DistanceTo(route[i])
	}

	return total
}
