// File: dot.go
// Role: Diagnostic export in Graphviz DOT syntax.

package dag

import (
	"fmt"
	"strings"
)

// DOT renders the graph in minimal Graphviz digraph syntax for tooling and
// visualization: a header declaring left-to-right layout, one quoted line
// per vertex, one `"<id>" -> "<predecessor>"` line per edge, and a closing
// brace. Vertices and edges are emitted in sorted order, so the output is
// deterministic and independent of traversal order.
//
// DOT requires Check to succeed and propagates its failure.
// Complexity: O(V·log V + E)
func (g *Graph) DOT() (string, error) {
	if err := g.Check(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("digraph G {\n")
	b.WriteString("rankdir=\"LR\";\n")
	for _, id := range g.Vertices() {
		fmt.Fprintf(&b, "%q\n", id)
	}
	for _, id := range g.Vertices() {
		for _, p := range g.Predecessors(id) {
			fmt.Fprintf(&b, "%q -> %q\n", id, p)
		}
	}
	b.WriteString("}")

	return b.String(), nil
}
