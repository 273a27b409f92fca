// File: algebra.go
// Role: Graph algebra — union-merge of two graphs and full edge reversal.

package dag

// Merge builds a new graph from the union of the vertex ids of g and other.
// Shared ids get unioned predecessor sets; payloads are resolved in
// deterministic construction order (g first, then other — a non-nil payload
// in other wins). The result is re-validated: a cycle present only in the
// union fails with ErrCycleDetected and no partially-built graph escapes.
// Neither input is mutated.
// Complexity: O(V+E) over both inputs
func Merge(g, other *Graph) (*Graph, error) {
	// 1) Both inputs are required.
	if g == nil || other == nil {
		return nil, ErrNilGraph
	}

	result := New()

	// 2) Register every vertex id first, so that predecessor unions in the
	//    second phase always resolve. Sorted enumeration keeps construction
	//    deterministic.
	for _, id := range g.Vertices() {
		_ = result.UpdateVertex(id, nil, nil, false)
	}
	for _, id := range other.Vertices() {
		_ = result.UpdateVertex(id, nil, nil, false)
	}

	// 3) Union predecessor sets and resolve payloads, g first then other.
	for _, id := range g.Vertices() {
		payload, _ := g.Payload(id)
		_ = result.UpdateVertex(id, payload, g.Predecessors(id), false)
	}
	for _, id := range other.Vertices() {
		payload, _ := other.Payload(id)
		_ = result.UpdateVertex(id, payload, other.Predecessors(id), false)
	}

	// 4) The union of two DAGs is not necessarily a DAG; validate before
	//    handing the result out.
	if err := result.Check(); err != nil {
		return nil, err
	}

	return result, nil
}

// Reverse builds a new graph with every edge inverted: if X depends on Y in
// g, the result has Y depending on X. Payloads are preserved and the tag
// map is shared by reference with g.
//
// Construction uses unchecked writes — reversing a DAG cannot introduce a
// cycle — followed by one validation pass whose verdict also settles the
// validity cache of g (the source is valid exactly when its reversal is).
// A validation failure here means g itself was not a DAG and surfaces as a
// wrapped ErrCycleDetected.
// Complexity: O(V+E)
func (g *Graph) Reverse() (*Graph, error) {
	const op = "dag.Reverse"

	result := New()

	// 1) The reversal shares tag storage with the source.
	result.tags = g.tags

	// 2) Invert every edge with unchecked writes.
	for _, id := range g.Vertices() {
		payload, _ := g.Payload(id)
		_ = result.UpdateVertex(id, payload, nil, false)
		for _, p := range g.Predecessors(id) {
			_ = result.UpdateVertex(p, nil, []string{id}, false)
		}
	}

	// 3) One validation pass; its outcome holds for the source graph too.
	if err := result.Check(); err != nil {
		g.validity = validityInvalid

		return nil, opError(op, "reversed graph failed validation", ErrCycleDetected)
	}
	g.validity = validityValid

	return result, nil
}
