package bfs

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/colgraph/core"
)

// Unreached is the hop distance stored for nodes the source cannot reach.
const Unreached = -1

// Layers runs a breadth-first search from source and writes the resulting
// shortest-path DAG into dag, overwriting whatever it held before.
//
// After a successful call:
//
//   - dag.Order holds reached nodes in BFS (non-decreasing hop) order,
//     starting with source.
//   - dag.Dist[v] is the hop count, or Unreached.
//   - dag.Sigma[v] counts shortest source→v paths; dag.Sigma[source] == 1.
//   - dag.Preds[v] lists the tail of every arc on such a path.
//
// The graph's weights are ignored.
func Layers(g *core.Graph, source int, dag *core.PathDAG) error {
	// 1) Validate inputs.
	if g == nil {
		return core.ErrNilGraph
	}
	if !g.HasNode(source) {
		return errors.Wrapf(core.ErrNodeOutOfRange, "bfs: source %d with n=%d", source, g.N())
	}
	if dag == nil || len(dag.Sigma) != g.N() {
		return errors.Wrapf(core.ErrLengthMismatch, "bfs: path buffers not sized for n=%d", g.N())
	}

	// 2) Seed the source; Order doubles as the FIFO queue.
	dag.Reset(source, Unreached)
	dag.Order = append(dag.Order, source)

	// 3) Expand layer by layer.
	var (
		u, head int
		next    float64
		a       core.Arc
	)
	for head = 0; head < len(dag.Order); head++ {
		u = dag.Order[head]
		next = dag.Dist[u] + 1
		for _, a = range g.Neighbors(u) {
			if dag.Dist[a.To] == Unreached {
				dag.Dist[a.To] = next
				dag.Order = append(dag.Order, a.To)
			}
			// Only arcs into the next layer lie on shortest paths.
			if dag.Dist[a.To] == next {
				dag.Sigma[a.To] += dag.Sigma[u]
				dag.Preds[a.To] = append(dag.Preds[a.To], u)
			}
		}
	}

	return nil
}
