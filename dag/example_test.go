package dag_test

import (
	"fmt"

	"github.com/mirrom/depgraph/dag"
)

// ExampleGraph demonstrates building a small dependency graph, asking for
// an ancestor closure, and exporting it for visualization.
func ExampleGraph() {
	g := dag.New()

	// 1) Vertices carry opaque payloads and name their predecessors:
	_ = g.AddVertex("fetch", nil)
	_ = g.AddVertex("build", nil, "fetch")
	_ = g.AddVertex("test", nil, "build")

	// 2) Everything "test" transitively depends on:
	closure, _ := g.Closure("test")
	fmt.Println(closure)

	// 3) Deterministic DOT export for graph tooling:
	out, _ := g.DOT()
	fmt.Println(out)

	// Output:
	// [build fetch]
	// digraph G {
	// rankdir="LR";
	// "build"
	// "fetch"
	// "test"
	// "build" -> "fetch"
	// "test" -> "build"
	// }
}

// ExampleGraph_Context shows contextual configuration inherited along a
// dependency chain: the nearest tagged ancestor answers for "test".
func ExampleGraph_Context() {
	g := dag.New()
	_ = g.AddVertex("toolchain", nil)
	_ = g.AddVertex("build", nil, "toolchain")
	_ = g.AddVertex("test", nil, "build")
	g.AddTag("toolchain", "gcc-14")

	entries, _ := g.Context("test")
	for _, e := range entries {
		fmt.Printf("%d %s %v\n", e.Distance, e.ID, e.Tag)
	}

	// Output:
	// 2 toolchain gcc-14
}

// ExampleGraph_UpdateVertex contrasts checked and unchecked mutation.
func ExampleGraph_UpdateVertex() {
	g := dag.New()
	_ = g.AddVertex("a", nil)
	_ = g.AddVertex("b", nil, "a")

	// Checked: closing a cycle is rejected and rolled back.
	err := g.UpdateVertex("a", nil, []string{"b"}, true)
	fmt.Println(err != nil, g.Predecessors("a"))

	// Unchecked: applied unconditionally, detection deferred to Check.
	_ = g.UpdateVertex("a", nil, []string{"b"}, false)
	fmt.Println(g.Check() != nil)

	// Output:
	// true []
	// true
}
