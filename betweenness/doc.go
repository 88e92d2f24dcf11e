// Package betweenness computes betweenness centrality with Brandes'
// algorithm on a dense core.Graph.
//
// For every source s the package builds the shortest-path DAG of s
// (bfs.Layers on unweighted graphs, dijkstra.CountPaths on weighted ones)
// and accumulates pair dependencies backwards over the settle order:
//
//	δ(v) = Σ_{w : v ∈ Preds(w)} σ(v)/σ(w) · (1 + δ(w))
//
// adding δ(v) to the score of every v ≠ s.
//
// Multigraph semantics: parallel arcs are distinct shortest paths, so a
// doubled edge doubles the paths routed through it.
//
// Scaling:
//
//   - Undirected graphs count every pair from both ends; scores are halved.
//   - Normalized (default) divides by the number of ordered pairs not
//     involving v, (n-1)(n-2); undirected scores by half of that. For n < 3
//     every score is 0 and no division happens.
//
// Parallelism: sources are cut into fixed chunks (internal/workers), each
// chunk sums into its own vector and vectors are added in chunk order, so
// the output is bit-identical for any worker count.
//
// Complexity:
//
//   - Unweighted: O(V·E) time.
//   - Weighted:   O(V·(V + E) log V) time.
//   - Memory:     O(V + E) per chunk in flight.
package betweenness
