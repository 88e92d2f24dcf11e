// Package colgraph is a batch graph-analytics engine for columnar data:
// parallel from/to/weight columns in, result columns out.
//
// 🚀 What is colgraph?
//
//	An embeddable library that a host data system calls once per batch:
//		• Identity compaction: any comparable value → dense NodeId
//		• Connected components: union-find group labels per row
//		• Shortest paths: Dijkstra, all reachable pairs
//		• Betweenness centrality: Brandes over BFS or Dijkstra passes
//		• PageRank: power iteration with a dangling-mass policy
//		• Association rules: Apriori itemsets, confidence, lift, patterns
//
// ✨ Guarantees
//
//   - Deterministic: first-seen id allocation, fixed chunking, ordered reductions
//   - Dense: CSR adjacency and slices in every hot path, no map traversal
//   - Per call: nothing is cached or shared between calls
//   - Validated: options and kwargs are checked before any work starts
//
// Packages:
//
//	columnar/      — host surface: nullable columns, kwargs, one function per algorithm
//	indexer/       — first-seen dense ids and reverse lookup
//	core/          — CSR Graph, PathDAG scratch space, error taxonomy, option validation
//	components/    — DisjointSet and row labeling
//	bfs/           — unweighted layers with shortest-path counts
//	dijkstra/      — single-source, all-pairs and path-counting Dijkstra
//	betweenness/   — Brandes accumulation
//	pagerank/      — power iteration
//	rules/         — frequent itemsets and association rules
//	builder/       — deterministic edge-list fixtures for tests and benchmarks
//
// Quick ASCII example:
//
//	    A───B       E───F
//	    │           │
//	    C           G
//
//	GraphSolver labels rows touching A, B or C with group 1 and rows
//	touching E, F or G with group 2.
//
//	go get github.com/katalvlaran/colgraph
package colgraph
