package dijkstra

import (
	"container/heap"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/colgraph/core"
)

// tieEpsilon is the relative tolerance under which two path lengths count
// as equal when counting shortest paths.
const tieEpsilon = 1e-10

// CountPaths is the weighted counterpart of bfs.Layers: a Dijkstra pass from
// source that records the shortest-path DAG into dag.
//
// After a successful call:
//
//   - dag.Order lists reached nodes in non-decreasing distance, and every
//     node after all of its predecessors.
//   - dag.Dist[v] is the distance, +Inf when unreached.
//   - dag.Sigma[v] counts shortest source→v paths; parallel arcs of equal
//     weight are distinct paths.
//   - dag.Preds[v] lists the tail of every arc on such a path.
//
// Distances within a relative tieEpsilon are treated as equal, so paths of
// the same length that accumulate rounding differently are still counted
// together. Zero-weight arcs between nodes at the same distance are part of
// the DAG; self-loops and arcs back into source never are. A zero-weight
// cycle would make path counts infinite, so arcs inside one are kept only
// when they follow the settle order of the Dijkstra pass.
//
// Complexity: O((V + E) log V) time, O(V) scratch beyond dag.
func CountPaths(g *core.Graph, source int, dag *core.PathDAG) error {
	// 1) Validate inputs.
	if g == nil {
		return core.ErrNilGraph
	}
	if !g.HasNode(source) {
		return errors.Wrapf(core.ErrNodeOutOfRange, "dijkstra: source %d with n=%d", source, g.N())
	}
	if dag == nil || len(dag.Sigma) != g.N() || len(dag.Done) != g.N() || len(dag.Pending) != g.N() {
		return errors.Wrapf(core.ErrLengthMismatch, "dijkstra: path buffers not sized for n=%d", g.N())
	}

	c := &pathCounter{g: g, source: source, dag: dag, pq: make(nodePQ, 0, g.N())}

	// 2) Distances.
	dag.Reset(source, math.Inf(1))
	c.settle()
	reached := len(dag.Order)

	// 3) Predecessors, topological order and path counts.
	c.collectPreds()
	if c.count() == reached {
		return nil
	}

	// 4) Zero-weight cycles left nodes unordered: among them keep only arcs
	// that follow the settle order, then count again.
	c.stuck = make([]bool, g.N())
	for v, done := range dag.Done {
		c.stuck[v] = done && dag.Pending[v] > 0
	}
	dag.Reset(source, math.Inf(1))
	c.settle()
	c.rank = make([]int, g.N())
	for i, v := range dag.Order {
		c.rank[v] = i
	}
	c.collectPreds()
	c.count()

	return nil
}

// pathCounter is the per-call state of CountPaths.
type pathCounter struct {
	g      *core.Graph
	source int
	dag    *core.PathDAG
	pq     nodePQ
	stuck  []bool // nodes on or behind a zero-weight cycle; nil when none
	rank   []int  // settle position, set with stuck
}

// settle runs plain Dijkstra, filling Dist, Done and a settle order.
func (c *pathCounter) settle() {
	dag := c.dag
	heap.Push(&c.pq, nodeItem{node: c.source, dist: 0})

	var (
		it nodeItem
		a  core.Arc
		nd float64
	)
	for c.pq.Len() > 0 {
		it = heap.Pop(&c.pq).(nodeItem)
		if dag.Done[it.node] || it.dist > dag.Dist[it.node] {
			continue // stale entry
		}
		dag.Done[it.node] = true
		dag.Order = append(dag.Order, it.node)

		for _, a = range c.g.Neighbors(it.node) {
			if dag.Done[a.To] {
				continue
			}
			nd = dag.Dist[it.node] + a.Weight
			if nd < dag.Dist[a.To] && !sameLength(nd, dag.Dist[a.To]) {
				dag.Dist[a.To] = nd
				heap.Push(&c.pq, nodeItem{node: a.To, dist: nd})
			}
		}
	}
}

// tight reports whether arc u→a.To ends a shortest path into a.To.
func (c *pathCounter) tight(u int, a core.Arc) bool {
	v := a.To
	if v == u || v == c.source || !c.dag.Done[v] {
		return false
	}
	if !sameLength(c.dag.Dist[u]+a.Weight, c.dag.Dist[v]) {
		return false
	}
	if c.stuck == nil || !c.stuck[u] || !c.stuck[v] {
		return true
	}

	return c.rank[u] < c.rank[v]
}

// collectPreds rebuilds Preds from every tight arc, tails in NodeId order.
func (c *pathCounter) collectPreds() {
	dag := c.dag
	for v := range dag.Preds {
		dag.Preds[v] = dag.Preds[v][:0]
	}
	for u, done := range dag.Done {
		if !done {
			continue
		}
		for _, a := range c.g.Neighbors(u) {
			if c.tight(u, a) {
				dag.Preds[a.To] = append(dag.Preds[a.To], u)
			}
		}
	}
}

// count orders the DAG with Kahn's algorithm, taking the ready node of
// least (distance, NodeId) first, and accumulates Sigma along that order.
// It returns the number of nodes ordered.
func (c *pathCounter) count() int {
	dag := c.dag
	for v := range dag.Sigma {
		dag.Pending[v] = len(dag.Preds[v])
		dag.Sigma[v] = 0
	}
	dag.Sigma[c.source] = 1
	dag.Order = dag.Order[:0]

	c.pq = c.pq[:0]
	heap.Push(&c.pq, nodeItem{node: c.source, dist: 0})
	var (
		u int
		a core.Arc
	)
	for c.pq.Len() > 0 {
		u = heap.Pop(&c.pq).(nodeItem).node
		dag.Order = append(dag.Order, u)
		for _, a = range c.g.Neighbors(u) {
			if !c.tight(u, a) {
				continue
			}
			dag.Sigma[a.To] += dag.Sigma[u]
			dag.Pending[a.To]--
			if dag.Pending[a.To] == 0 {
				heap.Push(&c.pq, nodeItem{node: a.To, dist: dag.Dist[a.To]})
			}
		}
	}

	return len(dag.Order)
}

// sameLength compares two finite path lengths with relative tolerance.
func sameLength(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return false
	}
	if a == b {
		return true
	}

	return math.Abs(a-b) <= tieEpsilon*math.Max(math.Abs(a), math.Abs(b))
}
