// Package dijkstra types: sentinel errors and functional options for the
// geographic shortest-path router.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Route.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Route.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoRoute indicates that no path exists between start and end. It is
	// the umbrella sentinel: every routing failure, whatever its cause,
	// satisfies errors.Is(err, ErrNoRoute).
	ErrNoRoute = errors.New("dijkstra: no route between points")

	// ErrSameEndpoints indicates start == end. Self-routes are rejected
	// outright rather than answered with a single-point path; this wraps
	// ErrNoRoute so the umbrella check still holds.
	ErrSameEndpoints = fmt.Errorf("%w: start and end are the same point", ErrNoRoute)

	// ErrUnroutablePoint indicates an endpoint that holds no recorded edges.
	// Such a point never appears as an adjacency key, a direct consequence
	// of value-keyed construction, so it can never be routed to or from.
	// Wraps ErrNoRoute.
	ErrUnroutablePoint = fmt.Errorf("%w: endpoint has no recorded edges", ErrNoRoute)

	// ErrBadMaxDistance indicates a non-positive exploration cap, which
	// would make every route unreachable.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be positive")
)

// Options configures the behavior of Route.
//
// MaxDistance – cap, in miles, on the tentative distances explored. Points
// farther than the cap are never settled. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64 // Maximum route distance to explore, in miles
}

// Option represents a functional option for configuring Route.
type Option func(*Options)

// WithMaxDistance caps exploration at the given number of miles. Routes
// longer than the cap fail with ErrNoRoute. The cap must be positive;
// non-positive values panic with ErrBadMaxDistance, signalling invalid
// configuration at the call site.
func WithMaxDistance(miles float64) Option {
	return func(o *Options) {
		if miles <= 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = miles
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: unlimited exploration.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}
