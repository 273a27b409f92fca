// Package topo_test provides benchmarks for iterator construction and
// full strict traversals.
package topo_test

import (
	"fmt"
	"testing"

	"github.com/mirrom/depgraph/dag"
	"github.com/mirrom/depgraph/topo"
)

// benchChain builds a linear dependency chain of n vertices.
func benchChain(n int) *dag.Graph {
	g := dag.New()
	_ = g.UpdateVertex("v0", nil, nil, false)
	for i := 1; i < n; i++ {
		_ = g.UpdateVertex(fmt.Sprintf("v%d", i), nil, []string{fmt.Sprintf("v%d", i-1)}, false)
	}

	return g
}

// benchStar builds one root with n dependents (maximal ready-set width).
func benchStar(n int) *dag.Graph {
	g := dag.New()
	_ = g.UpdateVertex("root", nil, nil, false)
	for i := 0; i < n; i++ {
		_ = g.UpdateVertex(fmt.Sprintf("leaf%d", i), nil, []string{"root"}, false)
	}

	return g
}

// BenchmarkNew measures iterator construction (population snapshot).
func BenchmarkNew(b *testing.B) {
	g := benchChain(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = topo.New(g)
	}
}

// BenchmarkDrain_Chain measures a full strict traversal of a deep chain
// (one ready vertex at every step).
func BenchmarkDrain_Chain(b *testing.B) {
	g := benchChain(512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it, _ := topo.New(g)
		for {
			if _, err := it.Next(); err != nil {
				break
			}
		}
	}
}

// BenchmarkDrain_Star measures a full strict traversal of a wide star
// (maximal unvisited pool during the scan).
func BenchmarkDrain_Star(b *testing.B) {
	g := benchStar(512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it, _ := topo.New(g)
		for {
			if _, err := it.Next(); err != nil {
				break
			}
		}
	}
}
