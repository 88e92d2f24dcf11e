package dijkstra

import (
	"container/heap"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/colgraph/core"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, +Inf if unreachable (or beyond
//     MaxDistance).
//   - prev: only with WithReturnPath (nil otherwise). prev[v] == u means the
//     shortest path to v ends with the arc u→v; NoPredecessor for the source
//     and unreached nodes. On equal distances the first relaxation wins.
//   - err:  error if inputs or options are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrNilGraph).
//  2. source must be a node of g (core.ErrNodeOutOfRange).
//  3. options must validate (core.ErrInvalidOption).
//
// Unweighted graphs are handled as unit-weight graphs.
func Dijkstra(g *core.Graph, source int, opts ...Option) ([]float64, []int, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, nil, core.ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, nil, errors.Wrapf(core.ErrNodeOutOfRange, "dijkstra: source %d with n=%d", source, g.N())
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, nil, err
	}

	// 2) Run a single pass.
	r := newRunner(g, cfg)
	r.run(source)

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo walks prev back from target and returns the node sequence from
// source to target. It returns nil when target was not reached from source.
func PathTo(prev []int, source, target int) []int {
	if target < 0 || target >= len(prev) {
		return nil
	}

	var path []int
	v := target
	for v != NoPredecessor && len(path) <= len(prev) {
		path = append(path, v)
		if v == source {
			break
		}
		v = prev[v]
	}
	if len(path) == 0 || path[len(path)-1] != source {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state of single-source passes. One runner is
// reused for many sources inside a worker chunk.
type runner struct {
	g    *core.Graph
	cfg  Options
	dist []float64
	prev []int
	done []bool
	pq   nodePQ
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.N()
	r := &runner{
		g:    g,
		cfg:  cfg,
		dist: make([]float64, n),
		done: make([]bool, n),
		pq:   make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	return r
}

// run resets the buffers and settles every node reachable from source.
func (r *runner) run(source int) {
	// 1) dist = +Inf, prev = none, nothing settled.
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.done[i] = false
	}
	for i := range r.prev {
		r.prev[i] = NoPredecessor
	}
	r.pq = r.pq[:0]

	// 2) Seed the source.
	r.dist[source] = 0
	heap.Push(&r.pq, nodeItem{node: source, dist: 0})

	// 3) Main loop: pop the closest unsettled node and relax its arcs.
	var it nodeItem
	for r.pq.Len() > 0 {
		it = heap.Pop(&r.pq).(nodeItem)
		if r.done[it.node] {
			continue // stale entry
		}
		if it.dist > r.cfg.MaxDistance {
			break
		}
		r.done[it.node] = true
		r.relax(it.node)
	}
}

// relax improves the distance of every arc head of u. Impassable arcs and
// candidates beyond MaxDistance are skipped. Only strictly shorter
// distances are accepted, so the first relaxation wins a tie.
func (r *runner) relax(u int) {
	var (
		a  core.Arc
		nd float64
	)
	for _, a = range r.g.Neighbors(u) {
		if a.Weight >= r.cfg.InfEdgeThreshold || r.done[a.To] {
			continue
		}
		nd = r.dist[u] + a.Weight
		if nd > r.cfg.MaxDistance || nd >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = nd
		if r.prev != nil {
			r.prev[a.To] = u
		}
		heap.Push(&r.pq, nodeItem{node: a.To, dist: nd})
	}
}

// nodeItem is a heap entry: a node and its tentative distance.
type nodeItem struct {
	node int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then node id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node < pq[j].node
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
