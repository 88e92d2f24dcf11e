// Package columnar is the host-facing surface of colgraph: nullable columns
// in, columns out.
//
// Every function takes parallel columns of equal length. Rows with a null in
// a required column are dropped before indexing; elementwise outputs
// (GraphSolver, PageRank) keep one slot per input row and put a null there.
// Length-changing outputs (CalculateShortestPath, BetweennessCentrality,
// GraphAssociationRules) are returned as frames of equal-length columns.
//
// Node values of any comparable type are compacted to dense NodeIds in
// first-seen order (from before to within a row), so output order follows
// the input.
//
// Keyword arguments are plain structs with yaml and validate tags. Hosts that
// receive them serialized call DecodeKwargs, which accepts YAML or JSON,
// rejects unknown keys and validates the result:
//
//	kw := columnar.DefaultShortestPathKwargs()
//	if err := columnar.DecodeKwargs([]byte(`{"directed": true}`), &kw); err != nil {
//		return err
//	}
//	frame, err := columnar.CalculateShortestPath(from, to, weight, kw)
package columnar
