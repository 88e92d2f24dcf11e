package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/colgraph/bfs"
	"github.com/katalvlaran/colgraph/core"
)

// ExampleLayers counts shortest paths across a 2x2 grid from one corner.
func ExampleLayers() {
	// 0 - 1
	// |   |
	// 2 - 3
	g, err := core.NewGraph(4, []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 3},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dag := core.NewPathDAG(g.N())
	if err = bfs.Layers(g, 0, dag); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("order=%v hops(3)=%v paths(3)=%v\n", dag.Order, dag.Dist[3], dag.Sigma[3])
	// Output: order=[0 1 2 3] hops(3)=2 paths(3)=2
}
