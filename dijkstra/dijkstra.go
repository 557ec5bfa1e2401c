package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/geograph/core"
)

// Route computes the shortest path from start to end over g, weighting each
// edge by the straight-line mile distance between its endpoints. On success
// the returned path begins with start, ends with end, has length ≥ 2, and
// the second return value is its total weight in miles.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must both appear as adjacency keys (ErrUnroutablePoint);
//     zero-edge vertices are never keys and are always rejected here.
//  3. start must differ from end (ErrSameEndpoints).
//
// A pair of valid, distinct endpoints in separate components fails with
// ErrNoRoute. All three failures satisfy errors.Is(err, ErrNoRoute).
//
// Options customization:
//
//   - WithMaxDistance(miles): stop exploring past the given cap.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Route(g *core.Graph, start, end core.Point, opts ...Option) ([]core.Point, float64, error) {
	// 1) Build Options from the functional arguments.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph pointer.
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	// 3) Both endpoints must carry at least one edge. This check runs before
	//    the same-point check so an isolated point reports its real problem.
	if !g.Routable(start) || !g.Routable(end) {
		return nil, 0, ErrUnroutablePoint
	}

	// 4) Self-routes are rejected, never answered with a trivial path.
	if start == end {
		return nil, 0, ErrSameEndpoints
	}

	// 5) Run the search.
	r := newRunner(g, cfg, start, end)
	r.process()

	// 6) Rebuild the path by walking predecessor links back from end.
	return r.reconstruct()
}

// runner holds the mutable state of a single Route execution.
type runner struct {
	graph   *core.Graph               // read-only input graph
	options Options                   // exploration limits
	start   core.Point                // source endpoint
	end     core.Point                // target endpoint; settling it stops the loop
	dist    map[core.Point]float64    // best-known miles from start; absent means +Inf
	prev    map[core.Point]core.Point // predecessor on the best-known path
	settled map[core.Point]bool       // points whose distance is final
	pq      pointPQ                   // lazy-decrease-key min-heap
}

func newRunner(g *core.Graph, cfg Options, start, end core.Point) *runner {
	r := &runner{
		graph:   g,
		options: cfg,
		start:   start,
		end:     end,
		dist:    make(map[core.Point]float64),
		prev:    make(map[core.Point]core.Point),
		settled: make(map[core.Point]bool),
	}

	// Seed: the source sits at distance zero. Points never relaxed simply
	// stay absent from dist, which reads as +Inf.
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pointItem{point: start, dist: 0})

	return r
}

// process is the main loop: extract the minimum, skip stale entries, settle,
// stop early on the target, otherwise relax the point's edges.
func (r *runner) process() {
	var item *pointItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*pointItem)

		// Stale duplicate from lazy decrease-key: already settled, skip.
		if r.settled[item.point] {
			continue
		}

		// Past the exploration cap nothing closer can ever surface, stop.
		if item.dist > r.options.MaxDistance {
			return
		}

		// This distance is now final.
		r.settled[item.point] = true

		// Early exit: the target's shortest distance is fixed.
		if item.point == r.end {
			return
		}

		r.relax(item.point)
	}
}

// relax attempts to improve the tentative distance of every neighbor of u,
// pushing a fresh heap entry for each strict improvement.
func (r *runner) relax(u core.Point) {
	base := r.dist[u]
	var w, next float64
	for _, v := range r.graph.Neighbors(u) {
		if r.settled[v] {
			continue
		}

		// Edge weight is computed from coordinates, never stored.
		w = u.DistanceTo(v)
		next = base + w
		if next > r.options.MaxDistance {
			continue
		}

		// Strict improvement only; the absent case reads as +Inf.
		if cur, seen := r.dist[v]; seen && next >= cur {
			continue
		}

		r.dist[v] = next
		r.prev[v] = u
		heap.Push(&r.pq, &pointItem{point: v, dist: next})
	}
}

// reconstruct walks prev links from end back to start and reverses the
// result. An end that was never relaxed has no predecessor entry, which
// means no route exists.
func (r *runner) reconstruct() ([]core.Point, float64, error) {
	if _, ok := r.prev[r.end]; !ok {
		return nil, 0, ErrNoRoute
	}

	path := []core.Point{r.end}
	for cur := r.end; cur != r.start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}

	// Reverse in place: the walk collected end→start.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, r.dist[r.end], nil
}

// pointItem pairs a point with the tentative distance it was pushed at.
type pointItem struct {
	point core.Point
	dist  float64
}

// pointPQ is a min-heap of *pointItem ordered by dist ascending. Lazy
// decrease-key: improvements push duplicates, and stale entries are skipped
// on pop via the runner's settled set.
type pointPQ []*pointItem

func (pq pointPQ) Len() int            { return len(pq) }
func (pq pointPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq pointPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pointPQ) Push(x interface{}) { *pq = append(*pq, x.(*pointItem)) }

func (pq *pointPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
