package bfs_test

import (
	"testing"

	"github.com/katalvlaran/colgraph/bfs"
	"github.com/katalvlaran/colgraph/builder"
	"github.com/katalvlaran/colgraph/core"
)

// BenchmarkLayers_Path measures one source on a long path (V=E+1).
func BenchmarkLayers_Path(b *testing.B) {
	el, err := builder.Path(10_000)
	if err != nil {
		b.Fatal(err)
	}
	g, _, err := el.Graph(false)
	if err != nil {
		b.Fatal(err)
	}
	dag := core.NewPathDAG(g.N())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.Layers(g, 0, dag)
	}
}

// BenchmarkLayers_RandomSparse measures one source on a seeded G(n,p) graph.
func BenchmarkLayers_RandomSparse(b *testing.B) {
	el, err := builder.RandomSparse(2_000, 0.005, builder.WithSeed(7))
	if err != nil {
		b.Fatal(err)
	}
	g, _, err := el.Graph(false)
	if err != nil {
		b.Fatal(err)
	}
	dag := core.NewPathDAG(g.N())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.Layers(g, 0, dag)
	}
}
