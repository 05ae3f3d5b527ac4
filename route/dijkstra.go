// SPDX-License-Identifier: MIT
// Package: campusnav/route
//
// dijkstra.go — Engine and the per-call search runner.
//
// Contract:
//   • ComputeRoute never mutates the graph and never fails loudly.
//   • The search stops when the destination is extracted, not when it is
//     first relaxed; only then is its distance final.

package route

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/campusnav/campus"
)

// Engine computes routes over one Campus Graph.
type Engine struct {
	g       *campus.Graph
	options Options
	order   []string // location IDs in configured order, for linear selection
}

// New returns an Engine over g. g must be non-nil.
func New(g *campus.Graph, opts ...Option) *Engine {
	if g == nil {
		panic("route: New(nil graph)")
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	locs := g.Locations()
	order := make([]string, len(locs))
	for i, l := range locs {
		order[i] = l.ID
	}

	return &Engine{g: g, options: cfg, order: order}
}

// Options returns the configuration the Engine was built with.
func (e *Engine) Options() Options { return e.options }

// ComputeRoute finds the shortest walking route from startID to endID.
//
// Implementation:
//   - Stage 1: Same ID or unknown IDs → failed result.
//   - Stage 2: Run the search from startID until endID is extracted or the
//     frontier is exhausted.
//   - Stage 3: Unreached endID → failed result; otherwise build the steps.
//
// Complexity: O(V² + E) with SelectLinear, O((V + E) log V) with SelectHeap.
func (e *Engine) ComputeRoute(startID, endID string) NavigationResult {
	if startID == endID {
		return failed()
	}
	if !e.g.HasLocation(startID) || !e.g.HasLocation(endID) {
		return failed()
	}

	r := e.newRunner(startID, endID)
	r.process()

	if r.dist[endID] == math.MaxInt64 {
		return failed()
	}

	return r.result()
}

// ComputeRoute is a one-shot helper equivalent to New(g, opts...).ComputeRoute.
func ComputeRoute(g *campus.Graph, startID, endID string, opts ...Option) NavigationResult {
	return New(g, opts...).ComputeRoute(startID, endID)
}

// runner holds the mutable state of a single search.
type runner struct {
	e       *Engine
	source  string
	target  string
	dist    map[string]int64  // ID → best known distance (MaxInt64 = not reached)
	prev    map[string]string // ID → predecessor on the best known path
	visited map[string]bool   // ID → distance is final
	pq      nodePQ            // only used with SelectHeap
}

func (e *Engine) newRunner(source, target string) *runner {
	n := len(e.order)
	r := &runner{
		e:       e,
		source:  source,
		target:  target,
		dist:    make(map[string]int64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
	}

	for _, id := range e.order {
		r.dist[id] = math.MaxInt64
	}
	r.dist[source] = 0

	if e.options.Selection == SelectHeap {
		r.pq = make(nodePQ, 0, n)
		heap.Init(&r.pq)
		heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
	}

	return r
}

// process extracts the closest unvisited location until the target is
// finalized or nothing reachable is left.
func (r *runner) process() {
	for {
		u, ok := r.next()
		if !ok {
			return
		}
		r.visited[u] = true
		if u == r.target {
			return
		}
		r.relax(u)
	}
}

// next returns the unvisited location with the smallest finite distance.
func (r *runner) next() (string, bool) {
	if r.e.options.Selection == SelectHeap {
		return r.popHeap()
	}

	return r.scanLinear()
}

func (r *runner) scanLinear() (string, bool) {
	best, bestDist := "", int64(math.MaxInt64)
	for _, id := range r.e.order {
		if r.visited[id] {
			continue
		}
		if d := r.dist[id]; d < bestDist {
			best, bestDist = id, d
		}
	}

	return best, bestDist != math.MaxInt64
}

func (r *runner) popHeap() (string, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		// Stale entry from an earlier, longer relaxation.
		if r.visited[item.id] {
			continue
		}
		return item.id, true
	}

	return "", false
}

// relax tries to shorten the path to every unvisited neighbor of u.
func (r *runner) relax(u string) {
	for _, edge := range r.e.g.Neighbors(u) {
		v := edge.To
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + edge.Distance
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u

		if r.e.options.Selection == SelectHeap {
			heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
		}
	}
}
