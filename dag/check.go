// File: check.go
// Role: Validity checking (predecessor references + cycle detection) with
// the memoized tri-state verdict, and the transitive-ancestor closure.

package dag

import "fmt"

// Check verifies that every referenced predecessor exists and that the
// predecessor relation contains no cycle.
//
// The verdict is memoized: a cached-valid graph returns nil immediately and
// a cached-invalid graph fails with ErrCycleDetected immediately. A full
// pass first validates predecessor references (failing with
// ErrMissingPredecessor and naming the offending vertex), then drives one
// sequential topological sweep over the whole graph; stalling while
// unvisited vertices remain signals a cycle. Either failure poisons the
// cache until the next structural write.
// Complexity: O(V+E) uncached, O(1) cached
func (g *Graph) Check() error {
	const op = "dag.Check"

	// 1) Serve the memoized verdict when present.
	switch g.validity {
	case validityValid:
		return nil
	case validityInvalid:
		return opError(op, "this graph contains at least one cycle", ErrCycleDetected)
	}

	// 2) Every predecessor reference must name an existing vertex.
	//    Sorted iteration keeps the reported vertex deterministic.
	for _, id := range g.Vertices() {
		for p := range g.preds[id] {
			if _, ok := g.payloads[p]; !ok {
				g.validity = validityInvalid

				return opError(op,
					fmt.Sprintf("invalid predecessors on vertex %q", id),
					ErrMissingPredecessor)
			}
		}
	}

	// 3) One full sequential topological sweep: seed the ready pool with
	//    vertices that have no predecessors, then repeatedly visit a ready
	//    vertex and decrement its successors' pending counters.
	pending := make(map[string]int, len(g.preds))
	ready := make([]string, 0, len(g.preds))
	for id, preds := range g.preds {
		pending[id] = len(preds)
		if len(preds) == 0 {
			ready = append(ready, id)
		}
	}

	visited := 0
	for len(ready) > 0 {
		id := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		visited++

		for _, s := range g.Successors(id) {
			pending[s]--
			if pending[s] == 0 {
				ready = append(ready, s)
			}
		}
	}

	// 4) If the sweep could not reach every vertex, the remainder sits on a
	//    cycle.
	if visited != len(g.payloads) {
		g.validity = validityInvalid

		return opError(op, "this graph contains at least one cycle", ErrCycleDetected)
	}

	g.validity = validityValid

	return nil
}

// Closure returns all transitive ancestors of id via predecessor edges,
// sorted, excluding id itself. It requires Check to succeed and propagates
// its failure unchanged.
// Complexity: O(V+E) plus the cost of Check
func (g *Graph) Closure(id string) ([]string, error) {
	if err := g.Check(); err != nil {
		return nil, err
	}

	// Expand a frontier by unioning in predecessors of newly discovered
	// ancestors until a fixed point.
	visited := make(vertexSet)
	frontier := make([]string, 0, len(g.preds[id]))
	for p := range g.preds[id] {
		frontier = append(frontier, p)
	}

	for len(frontier) > 0 {
		n := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if _, seen := visited[n]; seen {
			continue
		}
		visited[n] = struct{}{}

		for p := range g.preds[n] {
			frontier = append(frontier, p)
		}
	}

	return visited.sorted(), nil
}
