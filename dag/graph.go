// File: graph.go
// Role: Graph storage — payloads, predecessor sets, the lazily-derived
// successor index, tags, and the checked/unchecked mutation entry points.
//
// Determinism:
//   - Vertices(), Predecessors(), Successors() return IDs sorted
//     lexicographically ascending.
//
// Invariants:
//   - Every vertex id present in payloads has an entry in preds.
//   - Any predecessor-set write drops the successor cache and resets the
//     validity cache to unknown.

package dag

import (
	"fmt"
	"sort"
	"strings"
)

// vertexSet is the internal set-of-ids representation.
type vertexSet map[string]struct{}

// clone returns an independent copy of s.
func (s vertexSet) clone() vertexSet {
	out := make(vertexSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// sorted returns the members of s as a fresh, lexicographically sorted slice.
func (s vertexSet) sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// validity is the memoized outcome of the last full Check.
type validity int8

const (
	validityUnknown validity = iota // no verdict since the last structural write
	validityValid                   // predecessor relation verified acyclic
	validityInvalid                 // missing predecessor or cycle found
)

// Graph is the in-memory DAG store.
//
// It exclusively owns all vertex records. The successor index and the
// validity flag are derived caches: both are invalidated by every
// predecessor-set write and recomputed lazily on the next read. The Graph
// embeds no synchronization; callers must serialize structural mutation
// externally (see package doc).
type Graph struct {
	// payloads maps vertex id → opaque payload (nil allowed).
	payloads map[string]any

	// preds maps vertex id → predecessor id set.
	preds map[string]vertexSet

	// succs is the derived successor index; nil means "cache invalid".
	succs map[string]vertexSet

	// tags maps vertex id → opaque tag; sparse, absent by default.
	tags map[string]any

	// validity memoizes the last Check verdict.
	validity validity
}

// New creates an empty Graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{
		payloads: make(map[string]any),
		preds:    make(map[string]vertexSet),
		tags:     make(map[string]any),
	}
}

// AddVertex inserts a new vertex with the given payload and predecessors.
// It fails with ErrDuplicateVertex when id is already present and otherwise
// behaves exactly like a checked UpdateVertex: predecessors must exist.
// The graph is left unchanged on any failure.
// Complexity: O(|predecessors|)
func (g *Graph) AddVertex(id string, payload any, predecessors ...string) error {
	const op = "dag.AddVertex"

	if _, exists := g.payloads[id]; exists {
		return opError(op, fmt.Sprintf("vertex %q already exists", id), ErrDuplicateVertex)
	}

	return g.UpdateVertex(id, payload, predecessors, true)
}

// UpdateVertex inserts or extends a vertex.
//
// For a new id it stores payload (nil means "no payload") and the given
// predecessors. For an existing id it unions predecessors into the stored
// set and replaces the payload only when payload is non-nil.
//
// The checked flag selects the validation contract at the call site:
//
//   - checked: predecessors referencing unknown vertices fail with
//     ErrMissingPredecessor. When extending an existing vertex, the change
//     is applied provisionally, the transitive closure is recomputed, and a
//     detected cycle rolls the predecessor set back to its pre-call value
//     before failing with ErrCycleDetected — no partial mutation is
//     observable.
//   - unchecked: the structural change is applied unconditionally; the only
//     side effect is resetting the validity cache to unknown. Detection is
//     deferred to the next Check-dependent call.
//
// Either way, a predecessor-set write drops the successor cache.
// Complexity: O(|predecessors|) unchecked, O(V+E) checked (closure recompute).
func (g *Graph) UpdateVertex(id string, payload any, predecessors []string, checked bool) error {
	const op = "dag.UpdateVertex"

	// 1) Reject the empty id early; it can never name a vertex.
	if id == "" {
		return ErrEmptyVertexID
	}

	// 2) Normalize the incoming predecessor list into a set.
	incoming := make(vertexSet, len(predecessors))
	for _, p := range predecessors {
		incoming[p] = struct{}{}
	}

	// 3) Checked mode: every referenced predecessor must already exist.
	if checked {
		var missing []string
		for p := range incoming {
			if _, ok := g.payloads[p]; !ok {
				missing = append(missing, p)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return opError(op,
				fmt.Sprintf("predecessors reference missing vertices: %s", strings.Join(missing, ", ")),
				ErrMissingPredecessor)
		}
	}

	// 4) New vertex: store predecessors and payload as given.
	if _, exists := g.payloads[id]; !exists {
		g.setPredecessors(id, incoming)
		g.payloads[id] = payload

		return nil
	}

	// 5) Existing vertex: union the new predecessors into the stored set.
	previous := g.preds[id]
	union := previous.clone()
	for p := range incoming {
		union[p] = struct{}{}
	}
	g.setPredecessors(id, union)

	// 6) Checked mode: recompute the closure to detect a cycle introduced by
	//    the extension; roll back on failure so the graph is untouched.
	if checked {
		if _, err := g.Closure(id); err != nil {
			g.setPredecessors(id, previous)

			return opError(op,
				fmt.Sprintf("cannot update vertex (%q creates a cycle)", id),
				ErrCycleDetected)
		}
	}

	// 7) Replace the payload only when one was supplied.
	if payload != nil {
		g.payloads[id] = payload
	}

	return nil
}

// setPredecessors writes the predecessor set of id and invalidates both
// derived caches. Every structural mutation funnels through here.
func (g *Graph) setPredecessors(id string, predecessors vertexSet) {
	g.preds[id] = predecessors
	g.succs = nil
	g.validity = validityUnknown
}

// Predecessors returns the predecessor ids of id as a fresh sorted slice
// (a frozen view: mutating it does not affect the graph). Unknown ids
// yield an empty slice.
// Complexity: O(d·log d)
func (g *Graph) Predecessors(id string) []string {
	return g.preds[id].sorted()
}

// Successors returns the successor ids of id as a fresh sorted slice.
// The successor index is computed once per invalidation window by inverting
// all predecessor sets, then served from cache until the next structural
// write. Unknown ids yield an empty slice.
// Complexity: O(V+E) on a cold cache, O(d·log d) thereafter
func (g *Graph) Successors(id string) []string {
	g.ensureSuccessors()

	return g.succs[id].sorted()
}

// ensureSuccessors rebuilds the successor index when the cache is invalid.
func (g *Graph) ensureSuccessors() {
	if g.succs != nil {
		return
	}
	succs := make(map[string]vertexSet, len(g.preds))
	for id := range g.preds {
		succs[id] = make(vertexSet)
	}
	for id, preds := range g.preds {
		for p := range preds {
			// Unchecked writes may reference ids that do not exist yet;
			// give them a bucket rather than dropping the edge.
			if _, ok := succs[p]; !ok {
				succs[p] = make(vertexSet)
			}
			succs[p][id] = struct{}{}
		}
	}
	g.succs = succs
}

// AddTag attaches opaque data to a vertex. Tagging does not count as a
// structural mutation: caches stay intact.
func (g *Graph) AddTag(id string, value any) {
	g.tags[id] = value
}

// Tag returns the tag attached to id, or nil when the vertex is untagged.
func (g *Graph) Tag(id string) any {
	return g.tags[id]
}

// HasVertex reports whether id names a vertex in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.payloads[id]

	return ok
}

// Payload returns the payload stored for id and whether the vertex exists.
// A vertex created without a payload reports (nil, true).
func (g *Graph) Payload(id string) (any, bool) {
	payload, ok := g.payloads[id]

	return payload, ok
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.payloads)
}

// Vertices returns all vertex ids sorted lexicographically ascending.
// This is the stable enumeration surface; rely on it for reproducible output.
// Complexity: O(V·log V)
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.payloads))
	for id := range g.payloads {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// String renders one "id -> preds" line per vertex in sorted order.
// Unlike DOT, String never validates: it is usable on graphs mid-build.
func (g *Graph) String() string {
	var b strings.Builder
	for i, id := range g.Vertices() {
		if i > 0 {
			b.WriteByte('\n')
		}
		if preds := g.Predecessors(id); len(preds) > 0 {
			fmt.Fprintf(&b, "%s -> %s", id, strings.Join(preds, ", "))
		} else {
			fmt.Fprintf(&b, "%s -> (none)", id)
		}
	}

	return b.String()
}
