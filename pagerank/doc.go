// Package pagerank ranks the nodes of a dense core.Graph by power iteration.
//
// Model (n nodes, damping d, out-weight W(u)):
//
//	r'(v) = (1-d)/n + d · Σ_{u→v} r(u)·w(u→v)/W(u) + d · dangling(v)
//
// where W(u) is the number of out-arcs of u (multiplicity weighting, the
// default) or the sum of their weights (WithEdgeWeights). A node with W(u)
// == 0 is dangling; its mass is redistributed instead of vanishing:
//
//   - DanglingUniform:  spread evenly over all n nodes (default).
//   - DanglingSelfLoop: kept by the node itself, as if it had a self-loop.
//
// Either way Σ r = 1 holds after every iteration.
//
// Defaults: d = 0.85, MaxIterations = 100, Tolerance = 1e-10 on the L1
// change between iterations, uniform start 1/n. Duplicate arcs raise the
// share of their head proportionally; self-loops are ordinary arcs.
// Undirected graphs use both arcs of every edge.
//
// Implementation: the graph is transposed once so each iteration pulls
// mass along in-arcs with a precomputed coefficient w/W(u). Large graphs
// update node chunks in parallel; the L1 change is reduced in chunk order,
// so results do not depend on the worker count.
//
// Complexity: O(V + E) memory, O(iterations · (V + E)) time.
package pagerank
