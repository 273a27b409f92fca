// File: iterator.go
// Role: The topological Iterator — construction, Next, Leave, and the
// scheduler bookkeeping accessors.

package topo

import (
	"fmt"

	"github.com/mirrom/depgraph/dag"
)

// Iterator walks a dag.Graph in topological order.
//
// It snapshots the vertex population at construction: per-vertex state, the
// unvisited pool, and a pending-predecessor counter initialized to each
// vertex's predecessor-set size. The counter of a vertex is decremented
// when one of its predecessors reaches Visited — immediately on Next in
// strict mode, only on Leave in busy mode. A vertex is ready when its
// counter is zero.
//
// The Iterator is a non-owning view: it reads the graph but never mutates
// it, and it must not outlive the graph or survive structural mutation.
type Iterator struct {
	graph       *dag.Graph
	busyEnabled bool

	states     map[string]State
	nonVisited map[string]struct{}
	pending    map[string]int
}

// New builds an Iterator over g. Pass WithBusyState to enable the
// busy/visited protocol for parallel consumption.
// Complexity: O(V+E)
func New(g *dag.Graph, opts ...Option) (*Iterator, error) {
	// 1) Validate graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Apply optional settings.
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// 3) Snapshot the vertex population and precompute pending-predecessor
	//    counters; doing this up front keeps Next's ready test O(1) per
	//    candidate.
	ids := g.Vertices()
	it := &Iterator{
		graph:       g,
		busyEnabled: o.busyState,
		states:      make(map[string]State, len(ids)),
		nonVisited:  make(map[string]struct{}, len(ids)),
		pending:     make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		it.states[id] = NotVisited
		it.nonVisited[id] = struct{}{}
		it.pending[id] = len(g.Predecessors(id))
	}

	return it, nil
}

// Next returns the next vertex in topological order.
//
// Outcomes:
//
//   - (nil, ErrExhausted) — no unvisited vertices remain; end of sequence.
//   - (v, nil) — v was NotVisited with a zero pending count. Strict mode
//     marks it Visited and immediately decrements its successors' counters;
//     busy mode marks it Busy, removes it from the unvisited pool, and
//     defers the decrements to Leave.
//   - (nil, nil) — busy mode only: every unvisited vertex still has pending
//     predecessors in flight. Not an error; readiness changes on Leave.
//   - (nil, err wrapping dag.ErrCycleDetected) — strict mode could not make
//     progress although unvisited vertices remain: the graph has a cycle.
//
// Selection among multiple ready vertices is unspecified.
func (it *Iterator) Next() (*Vertex, error) {
	// 1) End of sequence.
	if len(it.nonVisited) == 0 {
		return nil, ErrExhausted
	}

	// 2) Pick any unvisited vertex whose predecessors are all Visited.
	//    Map iteration order makes the tie-break deliberately unspecified.
	picked, found := "", false
	for id := range it.nonVisited {
		if it.pending[id] == 0 {
			picked, found = id, true

			break
		}
	}

	// 3) Nothing ready: a cycle in strict mode, "in flight" in busy mode.
	if !found {
		if !it.busyEnabled {
			return nil, fmt.Errorf("topo: Next: %w", dag.ErrCycleDetected)
		}

		return nil, nil
	}

	// 4) Transition the selected vertex and update bookkeeping.
	if it.busyEnabled {
		it.states[picked] = Busy
	} else {
		it.states[picked] = Visited
		it.release(picked)
	}
	delete(it.nonVisited, picked)

	payload, _ := it.graph.Payload(picked)

	return &Vertex{
		ID:           picked,
		Payload:      payload,
		Predecessors: it.graph.Predecessors(picked),
	}, nil
}

// Leave reports completion of a Busy vertex: it transitions id to Visited
// and decrements the pending counters of its direct successors, making them
// eligible for a subsequent Next once all their predecessors are done.
//
// Calling Leave on an id the iterator does not track fails with
// ErrVertexNotFound; calling it on a vertex not currently Busy is a
// protocol fault and fails with ErrNotBusy.
func (it *Iterator) Leave(id string) error {
	state, ok := it.states[id]
	if !ok {
		return fmt.Errorf("topo: Leave(%q): %w", id, ErrVertexNotFound)
	}
	if state != Busy {
		return fmt.Errorf("topo: Leave(%q): %w", id, ErrNotBusy)
	}

	it.states[id] = Visited
	it.release(id)

	return nil
}

// release decrements the pending-predecessor counters of id's successors.
// Called exactly once per vertex, when it reaches Visited.
func (it *Iterator) release(id string) {
	for _, s := range it.graph.Successors(id) {
		it.pending[s]--
	}
}

// State returns the visitation state of id and whether the iterator tracks
// it.
func (it *Iterator) State(id string) (State, bool) {
	state, ok := it.states[id]

	return state, ok
}

// Remaining returns the number of vertices not yet returned by Next.
// Busy vertices are already excluded.
func (it *Iterator) Remaining() int {
	return len(it.nonVisited)
}
