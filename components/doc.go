// Package components labels connected components of an edge list with a
// disjoint-set union (union-find) over dense NodeIds.
//
// Overview:
//
//   - Direction is irrelevant: every edge unions its two endpoints.
//   - Find is iterative: one pass walks to the root, a second pass repoints
//     every visited node straight at it. Long chains never grow the stack.
//   - Union is by rank, keeping trees logarithmically shallow.
//
// Label numbering contract:
//
//	Rows are scanned in input order. The first time a row's key node has a
//	representative that has not been seen yet, that representative gets the
//	next label, starting at 1. Re-running on the same rows gives identical
//	labels; isomorphic inputs in another row order give the same partition
//	under possibly different numbers.
//
// Complexity:
//
//   - Time:  O(E·α(V)) for the unions plus O(rows·α(V)) for labeling.
//   - Space: O(V) for parent, rank and the per-root label table.
//
// Example:
//
//	labels, groups, err := components.Label(n, edges)
//	// labels[i] is the 1-based group of edges[i].From
package components
