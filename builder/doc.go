// SPDX-License-Identifier: MIT
// Package: colgraph/builder
//
// Package builder generates deterministic labeled edge lists for tests,
// examples and benchmarks. Every generator returns an *EdgeList: the same
// parallel from/to/weight columns a host would hand to package columnar.
//
// Components:
//
//   - Topologies: Path, Star, Cycle, Complete, RandomSparse.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn
//     ("A"…"Z"), or any pure func passed to WithIDScheme.
//   - Edge weights (WeightFn): ConstantWeightFn, UniformWeightFn. Without a
//     weight option the list carries no weight column and EdgeList.Graph
//     builds an unweighted graph.
//   - Randomness: RandomSparse draws from the RNG given by WithSeed or
//     WithRand only; nothing reads global state.
//
// Guarantees:
//
//   - Same arguments and seed ⇒ identical rows in identical order.
//   - Invalid sizes and probabilities are returned as errors; option
//     constructors panic on nil or negative arguments (programmer error).
//   - Nodes enter a graph through edges only, exactly like host columns, so
//     a generated vertex without edges is absent from EdgeList.Graph.
package builder
