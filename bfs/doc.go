// Package bfs provides an unweighted single-source breadth-first search over
// a dense core.Graph that records the shortest-path DAG of the source.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a source.
//   - Record, per node, the hop distance, the number of shortest paths
//     (sigma) and every predecessor on those paths.
//   - The visit order doubles as the settle order consumed by Brandes'
//     dependency accumulation (see package betweenness).
//
// Multigraph semantics
//
//	Parallel arcs u→v are distinct paths: each contributes sigma[u] to
//	sigma[v] and appears once in Preds[v]. Self-loops never lie on a
//	shortest path and are ignored.
//
// Determinism
//
//	Arcs are scanned in CSR order, which is input edge order, so Order and
//	Preds are fully reproducible for the same edge list.
//
// Complexity (V = nodes, E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) in the caller-owned PathDAG (reused across sources).
//
// Usage
//
//	dag := core.NewPathDAG(g.N())
//	for s := 0; s < g.N(); s++ {
//	    if err := bfs.Layers(g, s, dag); err != nil {
//	        return err
//	    }
//	    // dag.Order, dag.Sigma, dag.Preds, dag.Dist describe source s
//	}
//
// Errors
//
//   - core.ErrNilGraph         if the graph pointer is nil.
//   - core.ErrNodeOutOfRange   if the source is not a node of g.
//   - core.ErrLengthMismatch   if the PathDAG was sized for another graph.
package bfs
