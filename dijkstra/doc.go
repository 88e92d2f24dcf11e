// Package dijkstra implements Dijkstra's shortest-path algorithm on dense
// core.Graph values, plus the drivers built on it: an all-pairs table and a
// path-counting variant for weighted betweenness centrality.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes of a graph with non-negative arc weights. Nodes are
// settled in increasing distance order using a binary min-heap with
// "lazy decrease-key": an improved distance pushes a fresh entry and stale
// entries are discarded when popped.
//
// Complexity (per source):
//
//	– Time:  O((V + E) log V)
//	   • Each node is settled at most once.
//	   • Each arc relaxation may push one heap entry (up to E pushes).
//	– Space: O(V + E)
//	   • O(V) for distance and predecessor slices.
//	   • O(E) in the heap in the worst case (lazy decrease-key).
//
// AllPairs repeats the single-source pass from every node with at least one
// outgoing arc. Sources are split into fixed chunks that run on a bounded
// worker pool; chunk results are concatenated in chunk order, so the output
// order is source-major and identical for any worker count.
//
// Options:
//
//	– ReturnPath:       also return the predecessor slice.
//	– MaxDistance:      nodes farther than this stay unreached (≥ 0).
//	– InfEdgeThreshold: arcs with weight ≥ threshold are impassable (> 0).
//	– BothDirections:   undirected AllPairs emits (s,t) and (t,s).
//	– Workers:          AllPairs concurrency; 0 means GOMAXPROCS.
//	– Logger:           zap logger for run summaries; no-op by default.
//
// Errors:
//
//	– core.ErrNilGraph       if the graph pointer is nil.
//	– core.ErrNodeOutOfRange if the source is not a node of the graph.
//	– core.ErrInvalidOption  if an option fails validation.
//
// Negative weights never reach this package: core.NewGraph rejects them
// with core.ErrNegativeWeight.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, src, dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dist[dst], dijkstra.PathTo(prev, src, dst))
package dijkstra
